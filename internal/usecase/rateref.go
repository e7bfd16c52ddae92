package usecase

import (
	"context"

	"resource-backend/internal/domain/rateref"
	"resource-backend/internal/infra/converter"
	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/errs"
	"resource-backend/internal/usecase/readmodel"
)

type CreateRateRefInput struct {
	ID     string
	RateID string
}

// RateRefUseCase manages the rate references nested under one resource.
// Every operation requires the parent resource to be active first.
type RateRefUseCase interface {
	List(ctx context.Context, resourceID string, q ListQuery) ([]*readmodel.RateRefRM, error)
	Create(ctx context.Context, resourceID string, input CreateRateRefInput) (*readmodel.RateRefRM, error)
	Read(ctx context.Context, resourceID, id string) (*readmodel.RateRefRM, error)
	Delete(ctx context.Context, resourceID, id string) error
}

type rateRefUseCaseImpl struct {
	gateway kernel.Gateway
}

func NewRateRefUseCase(gateway kernel.Gateway) RateRefUseCase {
	return &rateRefUseCaseImpl{gateway: gateway}
}

func (u *rateRefUseCaseImpl) List(ctx context.Context, resourceID string, q ListQuery) ([]*readmodel.RateRefRM, error) {
	if _, err := requireActiveResource(ctx, u.gateway, resourceID); err != nil {
		return nil, err
	}

	links, err := u.gateway.QueryRateLinks(ctx, kernel.RateLinkQuery{
		QueryType:      q.QueryType,
		Expression:     q.Query,
		ResourceID:     resourceID,
		ActiveOnly:     true,
		OrderByNameAsc: true,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	page := paginate(links, q.Position, q.Size)
	result := make([]*readmodel.RateRefRM, 0, len(page))
	for i := range page {
		entry, err := u.resolveCatalogEntry(ctx, page[i].Name)
		if err != nil {
			return nil, err
		}
		result = append(result, converter.ToRateRefRM(&page[i], entry))
	}
	return result, nil
}

func (u *rateRefUseCaseImpl) Create(ctx context.Context, resourceID string, input CreateRateRefInput) (*readmodel.RateRefRM, error) {
	if _, err := requireActiveResource(ctx, u.gateway, resourceID); err != nil {
		return nil, err
	}

	if input.ID != "" {
		existing, err := u.gateway.ResolveRateLink(ctx, resourceID, input.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		if existing != nil {
			return nil, ErrDuplicateID
		}
		return nil, errs.Mark(errs.Newf("client-assigned id %q is not allowed", input.ID), ErrValidation)
	}

	entity, err := rateref.New(input.RateID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entry, err := u.gateway.ResolveRateCatalogEntry(ctx, entity.RateID())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if entry == nil {
		return nil, errs.Mark(errs.Newf("rate %q does not exist in the catalog", entity.RateID()), ErrValidation)
	}

	linkID := u.gateway.NewUID()
	err = runInTx(ctx, u.gateway, func(tx kernel.Tx) error {
		rateCents := entry.RateCents
		return tx.CreateRateLink(ctx, linkID, kernel.RateLinkDraft{
			ResourceID:  resourceID,
			Name:        entity.LinkName(),
			Description: entry.Description,
			RateCents:   &rateCents,
			RateType:    entry.RateType,
			Currency:    entry.Currency,
		})
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, resourceID, linkID)
}

func (u *rateRefUseCaseImpl) Read(ctx context.Context, resourceID, id string) (*readmodel.RateRefRM, error) {
	if _, err := requireActiveResource(ctx, u.gateway, resourceID); err != nil {
		return nil, err
	}
	link, err := u.requireActiveLink(ctx, resourceID, id)
	if err != nil {
		return nil, err
	}
	entry, err := u.resolveCatalogEntry(ctx, link.Name)
	if err != nil {
		return nil, err
	}
	return converter.ToRateRefRM(link, entry), nil
}

func (u *rateRefUseCaseImpl) Delete(ctx context.Context, resourceID, id string) error {
	if _, err := requireActiveResource(ctx, u.gateway, resourceID); err != nil {
		return err
	}
	if _, err := u.requireActiveLink(ctx, resourceID, id); err != nil {
		return err
	}
	return runInTx(ctx, u.gateway, func(tx kernel.Tx) error {
		return tx.DisableRateLink(ctx, resourceID, id)
	})
}

func (u *rateRefUseCaseImpl) requireActiveLink(ctx context.Context, resourceID, id string) (*kernel.RateLink, error) {
	link, err := u.gateway.ResolveRateLink(ctx, resourceID, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if link == nil || !link.State.Active() {
		return nil, ErrRateRefNotFound
	}
	return link, nil
}

// resolveCatalogEntry re-resolves the live catalog entry behind a stored
// link name. A link without the marker prefix, or a catalog entry that
// disappeared since link time, yields nil and the mapper falls back to
// the denormalized description.
func (u *rateRefUseCaseImpl) resolveCatalogEntry(ctx context.Context, linkName string) (*kernel.RateEntry, error) {
	rateID, ok := rateref.RateIDFromLinkName(linkName)
	if !ok {
		return nil, nil
	}
	entry, err := u.gateway.ResolveRateCatalogEntry(ctx, rateID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return entry, nil
}

func (u *rateRefUseCaseImpl) readBack(ctx context.Context, resourceID, id string) (*readmodel.RateRefRM, error) {
	link, err := u.gateway.ResolveRateLink(ctx, resourceID, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if link == nil {
		return nil, errs.Mark(errs.Newf("rate link %q vanished after commit", id), ErrStoreFailure)
	}
	entry, err := u.resolveCatalogEntry(ctx, link.Name)
	if err != nil {
		return nil, err
	}
	return converter.ToRateRefRM(link, entry), nil
}
