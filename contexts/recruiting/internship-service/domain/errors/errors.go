package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrCompanyNotFound     = errors.New("company profile not found")
	ErrCompanyRoleRequired = errors.New("company role required")
)
