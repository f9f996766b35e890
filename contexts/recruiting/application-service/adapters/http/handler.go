package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"internhub/contexts/recruiting/application-service/application/commands"
	"internhub/contexts/recruiting/application-service/application/queries"
	"internhub/contexts/recruiting/application-service/domain/entities"
	"internhub/contexts/recruiting/application-service/ports"
	httptransport "internhub/contexts/recruiting/application-service/transport/http"
	"internhub/internal/shared/scope"
)

type Handler struct {
	Apply        commands.ApplyUseCase
	UpdateStatus commands.UpdateStatusUseCase
	Queries      queries.QueryUseCase
	Logger       *slog.Logger
}

func (h Handler) ApplyHandler(
	ctx context.Context,
	callerID string,
	req httptransport.ApplyRequest,
) (httptransport.ApplyResponse, error) {
	item, err := h.Apply.Execute(ctx, commands.ApplyCommand{
		StudentID:    callerID,
		InternshipID: req.InternshipID,
	})
	if err != nil {
		return httptransport.ApplyResponse{}, err
	}
	return httptransport.ApplyResponse{
		Application: mapApplication(item),
	}, nil
}

func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
	applicationID string,
	req httptransport.UpdateApplicationStatusRequest,
) (httptransport.UpdateApplicationStatusResponse, error) {
	item, err := h.UpdateStatus.Execute(ctx, commands.UpdateStatusCommand{
		ApplicationID: applicationID,
		NewStatus:     req.Status,
		CallerID:      callerID,
		CallerRole:    scope.ParseRole(callerRole),
	})
	if err != nil {
		return httptransport.UpdateApplicationStatusResponse{}, err
	}
	return httptransport.UpdateApplicationStatusResponse{
		Application: mapApplication(item),
	}, nil
}

func (h Handler) GetApplicationHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
	applicationID string,
) (httptransport.GetApplicationResponse, error) {
	detail, err := h.Queries.GetForCaller(ctx, callerID, scope.ParseRole(callerRole), applicationID)
	if err != nil {
		return httptransport.GetApplicationResponse{}, err
	}
	return httptransport.GetApplicationResponse{
		Application: mapDetail(detail),
	}, nil
}

func (h Handler) ListApplicationsHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
) (httptransport.ListApplicationsResponse, error) {
	details, err := h.Queries.ListForCaller(ctx, callerID, scope.ParseRole(callerRole))
	if err != nil {
		return httptransport.ListApplicationsResponse{}, err
	}
	items := make([]httptransport.ApplicationDTO, 0, len(details))
	for _, detail := range details {
		items = append(items, mapDetail(detail))
	}
	return httptransport.ListApplicationsResponse{Items: items}, nil
}

func (h Handler) CountHandler(ctx context.Context, internshipID string) (httptransport.ApplicationCountResponse, error) {
	count, err := h.Queries.CountForInternship(ctx, internshipID)
	if err != nil {
		return httptransport.ApplicationCountResponse{}, err
	}
	return httptransport.ApplicationCountResponse{
		InternshipID: internshipID,
		Count:        count,
	}, nil
}

func (h Handler) ListReviewableCompaniesHandler(ctx context.Context, callerID string) (httptransport.ListReviewableCompaniesResponse, error) {
	companies, err := h.Queries.AcceptedCompaniesForStudent(ctx, callerID)
	if err != nil {
		return httptransport.ListReviewableCompaniesResponse{}, err
	}
	items := make([]httptransport.ReviewableCompanyDTO, 0, len(companies))
	for _, company := range companies {
		items = append(items, httptransport.ReviewableCompanyDTO{
			CompanyID: company.CompanyID,
			Name:      company.Name,
		})
	}
	return httptransport.ListReviewableCompaniesResponse{Items: items}, nil
}

func mapApplication(item entities.Application) httptransport.ApplicationDTO {
	return httptransport.ApplicationDTO{
		ApplicationID: item.ApplicationID,
		StudentID:     item.StudentID,
		InternshipID:  item.InternshipID,
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.Format(time.RFC3339),
	}
}

func mapDetail(detail ports.ApplicationDetail) httptransport.ApplicationDTO {
	dto := mapApplication(detail.Application)
	dto.StudentUsername = detail.Student.Username
	dto.StudentEmail = detail.Student.Email
	dto.InternshipTitle = detail.Internship.Title
	dto.CompanyID = detail.Company.CompanyID
	dto.CompanyName = detail.Company.Name
	return dto
}
