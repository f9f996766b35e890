package errors

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInternshipNotFound   = errors.New("internship not found")
	ErrDuplicateApplication = errors.New("application already exists for this internship")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrForbidden            = errors.New("caller may not act on this application")
)
