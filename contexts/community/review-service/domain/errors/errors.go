package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound  = errors.New("review not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrDuplicateReview = errors.New("review already exists for this company")
	ErrNotEligible     = errors.New("no accepted application with this company")
	ErrNotAuthor       = errors.New("caller is not the review author")
)
