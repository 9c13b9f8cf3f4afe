package errs

import "errors"

// Categories shared by the command side. Specific failures are marked with
// one of these so handlers can fall back to a status code per category.
var (
	ErrDomainValidation        = errors.New("domain validation error")
	ErrNotFound                = errors.New("not found")
	ErrForbidden               = errors.New("forbidden")
	ErrConflict                = errors.New("conflict")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
