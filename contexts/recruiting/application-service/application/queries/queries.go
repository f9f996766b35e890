package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"
	"internhub/internal/shared/scope"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// ListForCaller returns the applications the caller is allowed to see:
// everything for admins, the owning company's applications for company
// callers, the caller's own applications for students. An empty scope
// resolves to Forbidden rather than an empty list.
func (uc QueryUseCase) ListForCaller(ctx context.Context, callerID string, role scope.Role) ([]ports.ApplicationDetail, error) {
	callerScope, err := scope.Resolve(ctx, callerID, role, companyDirectory{uc.Repository})
	if err != nil {
		return nil, err
	}

	filter := ports.ApplicationFilter{}
	switch callerScope.Kind {
	case scope.KindAllowAll:
	case scope.KindOwnedByCompany:
		filter.CompanyID = callerScope.CompanyID
	case scope.KindAuthoredByStudent:
		filter.StudentID = callerScope.StudentID
	default:
		return nil, domainerrors.ErrForbidden
	}
	return uc.Repository.ListDetailed(ctx, filter)
}

// GetForCaller loads one application and checks its ownership chain against
// the caller's scope. Records outside the scope surface as NotFound so a
// caller cannot probe for ids it may not see.
func (uc QueryUseCase) GetForCaller(ctx context.Context, callerID string, role scope.Role, applicationID string) (ports.ApplicationDetail, error) {
	item, err := uc.Repository.GetApplication(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return ports.ApplicationDetail{}, err
	}
	internship, found, err := uc.Repository.InternshipByID(ctx, item.InternshipID)
	if err != nil {
		return ports.ApplicationDetail{}, err
	}
	if !found {
		return ports.ApplicationDetail{}, domainerrors.ErrApplicationNotFound
	}

	callerScope, err := scope.Resolve(ctx, callerID, role, companyDirectory{uc.Repository})
	if err != nil {
		return ports.ApplicationDetail{}, err
	}
	if !callerScope.Admits(scope.Ownership{StudentID: item.StudentID, CompanyID: internship.CompanyID}) {
		return ports.ApplicationDetail{}, domainerrors.ErrApplicationNotFound
	}

	details, err := uc.Repository.ListDetailed(ctx, ports.ApplicationFilter{ApplicationID: item.ApplicationID})
	if err != nil {
		return ports.ApplicationDetail{}, err
	}
	if len(details) == 0 {
		return ports.ApplicationDetail{}, domainerrors.ErrApplicationNotFound
	}
	return details[0], nil
}

// CountForInternship is public aggregate data; no scope applies.
func (uc QueryUseCase) CountForInternship(ctx context.Context, internshipID string) (int64, error) {
	id := strings.TrimSpace(internshipID)
	_, found, err := uc.Repository.InternshipByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domainerrors.ErrInternshipNotFound
	}
	return uc.Repository.CountByInternship(ctx, id)
}

// AcceptedCompaniesForStudent returns the distinct companies that accepted
// one of the student's applications, ordered by name. This is the eligibility
// input for reviews: a student may review exactly these companies.
func (uc QueryUseCase) AcceptedCompaniesForStudent(ctx context.Context, studentID string) ([]ports.CompanyRef, error) {
	details, err := uc.Repository.ListDetailed(ctx, ports.ApplicationFilter{
		StudentID: strings.TrimSpace(studentID),
		Status:    entities.ApplicationStatusAccepted,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]ports.CompanyRef, len(details))
	for _, detail := range details {
		if detail.Company.CompanyID == "" {
			continue
		}
		seen[detail.Company.CompanyID] = detail.Company
	}
	companies := make([]ports.CompanyRef, 0, len(seen))
	for _, company := range seen {
		companies = append(companies, company)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
	return companies, nil
}

type companyDirectory struct {
	repo ports.Repository
}

func (d companyDirectory) CompanyIDForIdentity(ctx context.Context, identityID string) (string, bool, error) {
	return d.repo.CompanyIDForIdentity(ctx, identityID)
}
