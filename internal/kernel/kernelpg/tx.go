package kernelpg

import (
	"context"
	"errors"

	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/errs"
	"resource-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) CreateResource(ctx context.Context, id string, draft kernel.ResourceDraft) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO activity_resources (id, name, contact_id, categories)
		 VALUES ($1, $2, $3, $4)`,
		id, draft.Name, pgconv.StringPtrToPgtype(draft.ContactID), draft.Categories)
	return errs.Wrap(err, "failed to create resource")
}

func (t *pgTx) CreateContact(ctx context.Context, id string, draft kernel.ContactDraft) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO account_contacts (id, first_name, last_name, full_name)
		 VALUES ($1, $2, $3, $4)`,
		id, draft.FirstName, draft.LastName, draft.FullName)
	return errs.Wrap(err, "failed to create contact")
}

func (t *pgTx) CreateRateLink(ctx context.Context, id string, draft kernel.RateLinkDraft) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO activity_rate_links (id, resource_id, name, description, rate_cents, rate_type, currency)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, draft.ResourceID, draft.Name, draft.Description, draft.RateCents, draft.RateType, draft.Currency)
	return errs.Wrap(err, "failed to create rate link")
}

func (t *pgTx) UpdateResource(ctx context.Context, id string, patch kernel.ResourcePatch) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE activity_resources
		    SET name = $2, contact_id = $3, modified_at = now()
		  WHERE id = $1`,
		id, patch.Name, pgconv.StringPtrToPgtype(patch.ContactID))
	if err != nil {
		return errs.Wrap(err, "failed to update resource")
	}
	if tag.RowsAffected() == 0 {
		return errs.New("update touched no resource row")
	}
	return nil
}

func (t *pgTx) DisableResource(ctx context.Context, id string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE activity_resources
		    SET disabled = true, modified_at = now()
		  WHERE id = $1 AND NOT disabled`,
		id)
	if err != nil {
		return errs.Wrap(err, "failed to disable resource")
	}
	if tag.RowsAffected() == 0 {
		return errs.New("disable touched no active resource row")
	}
	return nil
}

func (t *pgTx) DisableRateLink(ctx context.Context, resourceID, id string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE activity_rate_links
		    SET disabled = true, modified_at = now()
		  WHERE resource_id = $1 AND id = $2 AND NOT disabled`,
		resourceID, id)
	if err != nil {
		return errs.Wrap(err, "failed to disable rate link")
	}
	if tag.RowsAffected() == 0 {
		return errs.New("disable touched no active rate link row")
	}
	return nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	return errs.Wrap(t.tx.Commit(ctx), "failed to commit kernel transaction")
}

// Rollback is a no-op after a successful or failed Commit; pgx reports
// ErrTxClosed for that case and callers treat it as clean.
func (t *pgTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errs.Wrap(err, "failed to rollback kernel transaction")
	}
	return nil
}
