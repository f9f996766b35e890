package application

import (
	"context"
	"log/slog"
	"strings"

	"internhub/contexts/recruiting/internship-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/internship-service/domain/errors"
	"internhub/contexts/recruiting/internship-service/ports"
	"internhub/internal/shared/scope"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type CreateCommand struct {
	CallerIdentityID string
	CallerRole       scope.Role
	Title            string
	Location         string
	Description      string
}

// Create posts an internship owned by the caller's company.
func (s Service) Create(ctx context.Context, cmd CreateCommand) (entities.Internship, error) {
	if cmd.CallerRole != scope.RoleCompany {
		return entities.Internship{}, domainerrors.ErrCompanyRoleRequired
	}
	company, found, err := s.Repo.CompanyByIdentity(ctx, strings.TrimSpace(cmd.CallerIdentityID))
	if err != nil {
		return entities.Internship{}, err
	}
	if !found {
		return entities.Internship{}, domainerrors.ErrCompanyNotFound
	}

	internshipID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Internship{}, err
	}
	internship := entities.Internship{
		InternshipID: internshipID,
		CompanyID:    company.CompanyID,
		Title:        strings.TrimSpace(cmd.Title),
		Location:     strings.TrimSpace(cmd.Location),
		Description:  strings.TrimSpace(cmd.Description),
		CreatedAt:    s.Clock.Now().UTC(),
	}
	if !internship.ValidateCreate() {
		return entities.Internship{}, domainerrors.ErrInvalidRequest
	}
	if err := s.Repo.CreateInternship(ctx, internship); err != nil {
		return entities.Internship{}, err
	}

	s.logger().Info("internship posted",
		"event", "internship_posted",
		"module", "recruiting/internship-service",
		"layer", "application",
		"internship_id", internship.InternshipID,
		"company_id", internship.CompanyID,
	)
	return internship, nil
}

func (s Service) Get(ctx context.Context, internshipID string) (entities.Internship, error) {
	if strings.TrimSpace(internshipID) == "" {
		return entities.Internship{}, domainerrors.ErrInternshipNotFound
	}
	return s.Repo.GetInternship(ctx, strings.TrimSpace(internshipID))
}

func (s Service) List(ctx context.Context) ([]ports.InternshipListing, error) {
	return s.Repo.ListAll(ctx)
}

// ListForCompany returns the caller company's own postings.
func (s Service) ListForCompany(ctx context.Context, callerIdentityID string) ([]ports.InternshipListing, error) {
	company, found, err := s.Repo.CompanyByIdentity(ctx, strings.TrimSpace(callerIdentityID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrCompanyNotFound
	}
	return s.Repo.ListByCompany(ctx, company.CompanyID)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
