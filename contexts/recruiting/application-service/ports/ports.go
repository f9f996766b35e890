package ports

import (
	"context"
	"time"

	"internhub/contexts/recruiting/application-service/domain/entities"
)

// StudentRef, InternshipRef and CompanyRef are projections of rows owned by
// other contexts, read here for joins and ownership resolution.
type StudentRef struct {
	StudentID string
	Username  string
	Email     string
}

type InternshipRef struct {
	InternshipID string
	CompanyID    string
	Title        string
}

type CompanyRef struct {
	CompanyID string
	Name      string
}

// ApplicationDetail is an application joined with its full ownership chain:
// student summary and internship -> company summary.
type ApplicationDetail struct {
	Application entities.Application
	Student     StudentRef
	Internship  InternshipRef
	Company     CompanyRef
}

// ApplicationFilter narrows detailed listings. CompanyID filters through the
// internship join; empty fields are ignored.
type ApplicationFilter struct {
	ApplicationID string
	StudentID     string
	CompanyID     string
	Status        entities.ApplicationStatus
}

type Repository interface {
	// CreateApplication returns ErrDuplicateApplication when the
	// (student, internship) pair already exists; the storage unique
	// constraint backs the pre-check.
	CreateApplication(ctx context.Context, application entities.Application) error

	GetApplication(ctx context.Context, applicationID string) (entities.Application, error)

	// ListDetailed returns applications with their ownership chains,
	// newest first.
	ListDetailed(ctx context.Context, filter ApplicationFilter) ([]ApplicationDetail, error)

	// UpdateStatus is a single-record conditional write; concurrent
	// writers race, last successful write wins.
	UpdateStatus(ctx context.Context, applicationID string, status entities.ApplicationStatus, now time.Time) error

	CountByInternship(ctx context.Context, internshipID string) (int64, error)

	// InternshipByID resolves the internship and its owning company;
	// false when the internship does not exist.
	InternshipByID(ctx context.Context, internshipID string) (InternshipRef, bool, error)

	// CompanyIDForIdentity satisfies scope.CompanyDirectory.
	CompanyIDForIdentity(ctx context.Context, identityID string) (string, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
