package errors

import "errors"

var (
	ErrAdminOnly           = errors.New("caller is not an admin")
	ErrInvalidInput        = errors.New("invalid input")
	ErrIdempotencyRequired = errors.New("idempotency key required")
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different payload")
)
