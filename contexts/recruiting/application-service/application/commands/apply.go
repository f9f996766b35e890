package commands

import (
	"context"
	"log/slog"
	"strings"

	application "internhub/contexts/recruiting/application-service/application"
	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"
)

type ApplyCommand struct {
	StudentID    string
	InternshipID string
}

type ApplyUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute creates a PENDING application after validating the internship
// exists. The duplicate pre-check lives in the repository, backed by the
// composite unique index so racing calls still collapse to one row.
func (uc ApplyUseCase) Execute(ctx context.Context, cmd ApplyCommand) (entities.Application, error) {
	logger := application.ResolveLogger(uc.Logger)

	internshipID := strings.TrimSpace(cmd.InternshipID)
	_, found, err := uc.Repository.InternshipByID(ctx, internshipID)
	if err != nil {
		return entities.Application{}, err
	}
	if !found {
		return entities.Application{}, domainerrors.ErrInternshipNotFound
	}

	applicationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Application{}, err
	}
	now := uc.Clock.Now().UTC()
	item := entities.Application{
		ApplicationID: applicationID,
		StudentID:     strings.TrimSpace(cmd.StudentID),
		InternshipID:  internshipID,
		Status:        entities.ApplicationStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !item.ValidateCreate() {
		return entities.Application{}, domainerrors.ErrInvalidRequest
	}
	if err := uc.Repository.CreateApplication(ctx, item); err != nil {
		return entities.Application{}, err
	}

	logger.Info("application submitted",
		"event", "application_submitted",
		"module", "recruiting/application-service",
		"layer", "application",
		"application_id", item.ApplicationID,
		"internship_id", item.InternshipID,
		"student_id", item.StudentID,
	)
	return item, nil
}
