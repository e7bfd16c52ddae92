package usecase

import (
	"context"
	"strings"

	"resource-backend/internal/domain/resource"
	"resource-backend/internal/infra/converter"
	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/errs"
	"resource-backend/internal/usecase/readmodel"
)

type CreateResourceInput struct {
	ID        string
	Name      string
	FirstName string
	LastName  string
	ContactID string
}

type UpdateResourceInput struct {
	Name      string
	ContactID string
}

// ResourceUseCase exposes the resource operations over the backing
// store. Concurrent writes to the same id are not coordinated:
// last-committed-write-wins, no version check is performed.
type ResourceUseCase interface {
	List(ctx context.Context, q ListQuery) ([]*readmodel.ResourceRM, error)
	Create(ctx context.Context, input CreateResourceInput) (*readmodel.ResourceRM, error)
	Read(ctx context.Context, id string) (*readmodel.ResourceRM, error)
	Update(ctx context.Context, id string, input UpdateResourceInput) (*readmodel.ResourceRM, error)
	Delete(ctx context.Context, id string) error
}

type resourceUseCaseImpl struct {
	gateway kernel.Gateway
}

func NewResourceUseCase(gateway kernel.Gateway) ResourceUseCase {
	return &resourceUseCaseImpl{gateway: gateway}
}

func (u *resourceUseCaseImpl) List(ctx context.Context, q ListQuery) ([]*readmodel.ResourceRM, error) {
	resources, err := u.gateway.QueryResources(ctx, kernel.ResourceQuery{
		QueryType:      q.QueryType,
		Expression:     q.Query,
		Category:       kernel.CategoryProject,
		ActiveOnly:     true,
		OrderByNameAsc: true,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	page := paginate(resources, q.Position, q.Size)
	result := make([]*readmodel.ResourceRM, 0, len(page))
	for i := range page {
		contact, err := u.resolveLinkedContact(ctx, &page[i])
		if err != nil {
			return nil, err
		}
		result = append(result, converter.ToResourceRM(&page[i], contact))
	}
	return result, nil
}

func (u *resourceUseCaseImpl) Create(ctx context.Context, input CreateResourceInput) (*readmodel.ResourceRM, error) {
	if input.ID != "" {
		existing, err := u.gateway.ResolveResource(ctx, input.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if existing != nil {
			return nil, ErrDuplicateID
		}
		return nil, errs.Mark(errs.Newf("client-assigned id %q is not allowed", input.ID), ErrValidation)
	}

	entity, err := resource.New(input.Name, input.FirstName, input.LastName, input.ContactID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	contact, err := u.gateway.ResolveContact(ctx, entity.ContactID())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if contact == nil {
		// Dedup before creating: an active contact with the same name
		// is reused instead of adding a twin to the account partition.
		matches, err := u.gateway.QueryContacts(ctx, kernel.ContactQuery{
			FirstName:  entity.FirstName(),
			LastName:   entity.LastName(),
			ActiveOnly: true,
		})
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if len(matches) > 0 {
			contact = &matches[0]
		}
	}

	resourceID := u.gateway.NewUID()
	err = runInTx(ctx, u.gateway, func(tx kernel.Tx) error {
		contactID := ""
		fullName := ""
		if contact != nil {
			contactID = contact.ID
			fullName = contact.FullName
		} else {
			contactID = u.gateway.NewUID()
			fullName = entity.LastName() + ", " + entity.FirstName()
			draft := kernel.ContactDraft{
				FirstName: entity.FirstName(),
				LastName:  entity.LastName(),
				FullName:  fullName,
			}
			if err := tx.CreateContact(ctx, contactID, draft); err != nil {
				return err
			}
		}

		return tx.CreateResource(ctx, resourceID, kernel.ResourceDraft{
			Name:       entity.ResolveDisplayName(fullName),
			ContactID:  &contactID,
			Categories: []string{kernel.CategoryProject},
		})
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write so store-assigned provenance reaches the caller.
	return u.readBack(ctx, resourceID)
}

func (u *resourceUseCaseImpl) Read(ctx context.Context, id string) (*readmodel.ResourceRM, error) {
	res, err := requireActiveResource(ctx, u.gateway, id)
	if err != nil {
		return nil, err
	}
	contact, err := u.resolveLinkedContact(ctx, res)
	if err != nil {
		return nil, err
	}
	return converter.ToResourceRM(res, contact), nil
}

func (u *resourceUseCaseImpl) Update(ctx context.Context, id string, input UpdateResourceInput) (*readmodel.ResourceRM, error) {
	if _, err := requireActiveResource(ctx, u.gateway, id); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errs.Mark(errs.New("name is required"), ErrValidation)
	}

	patch := kernel.ResourcePatch{Name: name}
	if contactID := strings.TrimSpace(input.ContactID); contactID != "" {
		contact, err := u.gateway.ResolveContact(ctx, contactID)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if contact == nil {
			return nil, errs.Mark(errs.Newf("contact %q does not exist", contactID), ErrValidation)
		}
		patch.ContactID = &contact.ID
	}

	err := runInTx(ctx, u.gateway, func(tx kernel.Tx) error {
		return tx.UpdateResource(ctx, id, patch)
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, id)
}

func (u *resourceUseCaseImpl) Delete(ctx context.Context, id string) error {
	if _, err := requireActiveResource(ctx, u.gateway, id); err != nil {
		return err
	}
	return runInTx(ctx, u.gateway, func(tx kernel.Tx) error {
		return tx.DisableResource(ctx, id)
	})
}

// resolveLinkedContact treats an absent contact as "no contact", never
// as an error; the mapper derives name parts from the display name in
// that case.
func (u *resourceUseCaseImpl) resolveLinkedContact(ctx context.Context, res *kernel.Resource) (*kernel.Contact, error) {
	if res.ContactID == nil {
		return nil, nil
	}
	contact, err := u.gateway.ResolveContact(ctx, *res.ContactID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return contact, nil
}

func (u *resourceUseCaseImpl) readBack(ctx context.Context, id string) (*readmodel.ResourceRM, error) {
	res, err := u.gateway.ResolveResource(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if res == nil {
		return nil, errs.Mark(errs.Newf("resource %q vanished after commit", id), ErrStoreFailure)
	}
	contact, err := u.resolveLinkedContact(ctx, res)
	if err != nil {
		return nil, err
	}
	return converter.ToResourceRM(res, contact), nil
}
