package commands

import (
	"context"
	"log/slog"
	"strings"

	application "internhub/contexts/recruiting/application-service/application"
	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"
	"internhub/internal/shared/scope"
)

type UpdateStatusCommand struct {
	ApplicationID string
	NewStatus     string
	CallerID      string
	CallerRole    scope.Role
}

type UpdateStatusUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute resolves the application's ownership chain and writes the new
// status. Admins write unconditionally; a company caller must own the
// internship the application targets. There is no origin-state guard.
func (uc UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	status, ok := entities.ParseApplicationStatus(cmd.NewStatus)
	if !ok {
		return entities.Application{}, domainerrors.ErrInvalidStatus
	}

	item, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return entities.Application{}, err
	}
	internship, found, err := uc.Repository.InternshipByID(ctx, item.InternshipID)
	if err != nil {
		return entities.Application{}, err
	}
	if !found {
		return entities.Application{}, domainerrors.ErrInternshipNotFound
	}

	callerScope, err := scope.Resolve(ctx, cmd.CallerID, cmd.CallerRole, companyDirectory{uc.Repository})
	if err != nil {
		return entities.Application{}, err
	}
	switch callerScope.Kind {
	case scope.KindAllowAll:
	case scope.KindOwnedByCompany:
		if !callerScope.Admits(scope.Ownership{StudentID: item.StudentID, CompanyID: internship.CompanyID}) {
			return entities.Application{}, domainerrors.ErrForbidden
		}
	default:
		// Students never decide applications, not even their own.
		return entities.Application{}, domainerrors.ErrForbidden
	}

	now := uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateStatus(ctx, item.ApplicationID, status, now); err != nil {
		return entities.Application{}, err
	}
	item.Status = status
	item.UpdatedAt = now

	logger.Info("application status updated",
		"event", "application_status_updated",
		"module", "recruiting/application-service",
		"layer", "application",
		"application_id", item.ApplicationID,
		"status", string(status),
		"caller_role", string(cmd.CallerRole),
	)
	return item, nil
}

// companyDirectory adapts the repository to scope.CompanyDirectory.
type companyDirectory struct {
	repo ports.Repository
}

func (d companyDirectory) CompanyIDForIdentity(ctx context.Context, identityID string) (string, bool, error) {
	return d.repo.CompanyIDForIdentity(ctx, identityID)
}
