package ports

import (
	"context"
	"time"

	"internhub/contexts/identity-access/company-service/domain/entities"
)

// CompanyProfile is a company joined with its identity summary, as the
// listing and profile reads return it.
type CompanyProfile struct {
	Company  entities.Company
	Username string
}

type Repository interface {
	// CreateCompanyWithIdentity persists the identity and the company in
	// one unit of work. Returns ErrEmailTaken when the email is already
	// held by any identity or company.
	CreateCompanyWithIdentity(ctx context.Context, identity entities.Identity, company entities.Company) error

	GetCompany(ctx context.Context, companyID string) (entities.Company, error)
	GetCompanyByIdentity(ctx context.Context, identityID string) (entities.Company, error)

	// SetStatus is a single-record conditional write; it returns the
	// updated company or ErrCompanyNotFound when no row matched.
	SetStatus(ctx context.Context, companyID string, status entities.CompanyStatus, now time.Time) (entities.Company, error)

	ListByStatus(ctx context.Context, status entities.CompanyStatus) ([]CompanyProfile, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
