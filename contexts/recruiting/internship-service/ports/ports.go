package ports

import (
	"context"
	"time"

	"internhub/contexts/recruiting/internship-service/domain/entities"
)

// CompanyRef is the projection of a company row this context reads for
// ownership resolution and listing summaries.
type CompanyRef struct {
	CompanyID string
	Name      string
	Website   string
}

// InternshipListing is a posting joined with its owning-company summary and
// the current application count.
type InternshipListing struct {
	Internship       entities.Internship
	Company          CompanyRef
	ApplicationCount int64
}

type Repository interface {
	CreateInternship(ctx context.Context, internship entities.Internship) error
	GetInternship(ctx context.Context, internshipID string) (entities.Internship, error)
	ListAll(ctx context.Context) ([]InternshipListing, error)
	ListByCompany(ctx context.Context, companyID string) ([]InternshipListing, error)

	// CompanyByIdentity resolves the caller company for COMPANY-role
	// operations; false when the identity has no company profile.
	CompanyByIdentity(ctx context.Context, identityID string) (CompanyRef, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
