package ports

import (
	"context"
	"time"

	"internhub/contexts/community/review-service/domain/entities"
)

// AuthorRef and CompanyRef are projections of rows owned by other contexts.
type AuthorRef struct {
	AuthorID string
	Username string
}

type CompanyRef struct {
	CompanyID string
	Name      string
	Website   string
}

// ReviewDetail is a review joined with the summaries of the rows it points
// at. Company listings fill Author; author listings fill Company.
type ReviewDetail struct {
	Review  entities.Review
	Author  AuthorRef
	Company CompanyRef
}

// RatingSummary is the aggregate over a company's reviews. Average is 0 when
// Count is 0.
type RatingSummary struct {
	Average float64
	Count   int64
}

type Repository interface {
	// CreateReview returns ErrDuplicateReview when the (author, company)
	// pair already exists; the storage unique constraint backs the
	// pre-check.
	CreateReview(ctx context.Context, review entities.Review) error

	GetReview(ctx context.Context, reviewID string) (entities.Review, error)

	SaveReview(ctx context.Context, review entities.Review) error

	DeleteReview(ctx context.Context, reviewID string) error

	// ListByCompany returns a company's reviews with author summaries,
	// newest first.
	ListByCompany(ctx context.Context, companyID string) ([]ReviewDetail, error)

	// ListByAuthor returns an author's reviews with target-company
	// summaries, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]ReviewDetail, error)

	// Aggregate computes the raw average and count over a company's
	// reviews. Rounding happens in the application layer.
	Aggregate(ctx context.Context, companyID string) (RatingSummary, error)

	// CompanyByID resolves a company projection; false when the company
	// does not exist.
	CompanyByID(ctx context.Context, companyID string) (CompanyRef, bool, error)

	// HasAcceptedApplication reports whether the student has at least one
	// accepted application at an internship owned by the company.
	HasAcceptedApplication(ctx context.Context, studentID, companyID string) (bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
