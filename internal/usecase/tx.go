package usecase

import (
	"context"
	"log/slog"

	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/errs"
)

// runInTx scopes the mutating section of one operation. On any failure
// the transaction is rolled back before the error surfaces; rollback
// failures are logged and swallowed so they never mask the original
// error. Rollback after a successful commit is a safe no-op.
func runInTx(ctx context.Context, gateway kernel.Gateway, fn func(tx kernel.Tx) error) error {
	tx, err := gateway.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback kernel transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(tx); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	return nil
}

// requireActiveResource resolves the resource that a read or nested
// operation targets. Absent and disabled rows are both not-found.
func requireActiveResource(ctx context.Context, gateway kernel.Gateway, id string) (*kernel.Resource, error) {
	res, err := gateway.ResolveResource(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if res == nil || !res.State.Active() {
		return nil, ErrResourceNotFound
	}
	return res, nil
}
