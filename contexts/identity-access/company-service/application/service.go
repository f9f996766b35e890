package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "internhub/contexts/identity-access/company-service/domain/errors"
	"internhub/contexts/identity-access/company-service/domain/entities"
	"internhub/contexts/identity-access/company-service/ports"
	"internhub/internal/shared/scope"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type RegisterCommand struct {
	Username    string
	Email       string
	Name        string
	Website     string
	Description string
}

type RegistrationResult struct {
	Identity entities.Identity
	Company  entities.Company
}

// Register creates the COMPANY-role identity and the PENDING company
// profile. Email uniqueness across identities and companies is pre-checked
// by the repository and backed by storage constraints.
func (s Service) Register(ctx context.Context, cmd RegisterCommand) (RegistrationResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	name := strings.TrimSpace(cmd.Name)
	if email == "" || name == "" {
		return RegistrationResult{}, domainerrors.ErrInvalidRequest
	}

	identityID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return RegistrationResult{}, err
	}
	companyID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return RegistrationResult{}, err
	}

	now := s.Clock.Now().UTC()
	identity := entities.Identity{
		IdentityID: identityID,
		Username:   strings.TrimSpace(cmd.Username),
		Email:      email,
		Role:       string(scope.RoleCompany),
		CreatedAt:  now,
	}
	company := entities.Company{
		CompanyID:   companyID,
		IdentityID:  identityID,
		Name:        name,
		Email:       email,
		Website:     strings.TrimSpace(cmd.Website),
		Description: strings.TrimSpace(cmd.Description),
		Status:      entities.CompanyStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !company.ValidateCreate() {
		return RegistrationResult{}, domainerrors.ErrInvalidRequest
	}
	if err := s.Repo.CreateCompanyWithIdentity(ctx, identity, company); err != nil {
		return RegistrationResult{}, err
	}

	s.logger().Info("company registered",
		"event", "company_registered",
		"module", "identity-access/company-service",
		"layer", "application",
		"company_id", company.CompanyID,
	)
	return RegistrationResult{Identity: identity, Company: company}, nil
}

type VerifyCommand struct {
	CompanyID    string
	TargetStatus string
	CallerRole   scope.Role
}

// Verify writes APPROVED or REJECTED over any prior status. There is no
// origin-state guard: re-verifying an already decided company is allowed.
func (s Service) Verify(ctx context.Context, cmd VerifyCommand) (entities.Company, error) {
	if cmd.CallerRole != scope.RoleAdmin {
		return entities.Company{}, domainerrors.ErrAdminOnly
	}
	status, ok := entities.ParseCompanyStatus(cmd.TargetStatus)
	if !ok || !status.VerifyTarget() {
		return entities.Company{}, domainerrors.ErrInvalidTargetStatus
	}
	if strings.TrimSpace(cmd.CompanyID) == "" {
		return entities.Company{}, domainerrors.ErrCompanyNotFound
	}

	company, err := s.Repo.SetStatus(ctx, strings.TrimSpace(cmd.CompanyID), status, s.Clock.Now().UTC())
	if err != nil {
		return entities.Company{}, err
	}

	s.logger().Info("company verified",
		"event", "company_verified",
		"module", "identity-access/company-service",
		"layer", "application",
		"company_id", company.CompanyID,
		"status", string(company.Status),
	)
	return company, nil
}

// LoginGate is invoked by the auth collaborator after credentials check out.
// Non-company roles always pass; company identities need an APPROVED
// profile.
func (s Service) LoginGate(ctx context.Context, identityID string, role scope.Role) error {
	if role != scope.RoleCompany {
		return nil
	}
	company, err := s.Repo.GetCompanyByIdentity(ctx, strings.TrimSpace(identityID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrCompanyNotFound) {
			return domainerrors.ErrProfileMissing
		}
		return err
	}
	switch company.Status {
	case entities.CompanyStatusPending:
		return domainerrors.ErrPendingVerification
	case entities.CompanyStatusRejected:
		return domainerrors.ErrRejected
	default:
		return nil
	}
}

func (s Service) Profile(ctx context.Context, identityID string) (entities.Company, error) {
	if strings.TrimSpace(identityID) == "" {
		return entities.Company{}, domainerrors.ErrInvalidRequest
	}
	return s.Repo.GetCompanyByIdentity(ctx, strings.TrimSpace(identityID))
}

func (s Service) Status(ctx context.Context, identityID string) (entities.CompanyStatus, error) {
	company, err := s.Profile(ctx, identityID)
	if err != nil {
		return "", err
	}
	return company.Status, nil
}

func (s Service) ListApproved(ctx context.Context) ([]ports.CompanyProfile, error) {
	return s.Repo.ListByStatus(ctx, entities.CompanyStatusApproved)
}

func (s Service) ListPending(ctx context.Context) ([]ports.CompanyProfile, error) {
	return s.Repo.ListByStatus(ctx, entities.CompanyStatusPending)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
