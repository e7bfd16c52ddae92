package usecase

import "resource-backend/internal/pkg/errs"

// Error kinds surfaced to the transport layer. Validation always runs
// before a transaction is opened, so ErrValidation never follows a
// rollback; ErrStoreFailure always does.
var (
	ErrValidation       = errs.New("validation failed")
	ErrDuplicateID      = errs.New("id already exists")
	ErrResourceNotFound = errs.New("resource not found")
	ErrRateRefNotFound  = errs.New("rate reference not found")
	ErrStoreFailure     = errs.New("backing store operation failed")
)
