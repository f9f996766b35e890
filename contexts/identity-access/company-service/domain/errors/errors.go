package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrInvalidTargetStatus = errors.New("invalid target status")
	ErrAdminOnly           = errors.New("admin role required")

	// Login-gate outcomes, all translated to Unauthorized by the caller.
	ErrProfileMissing      = errors.New("company profile not found")
	ErrPendingVerification = errors.New("company account pending verification")
	ErrRejected            = errors.New("company account rejected")
)
