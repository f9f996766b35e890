package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"internhub/contexts/identity-access/company-service/application"
	"internhub/contexts/identity-access/company-service/domain/entities"
	"internhub/contexts/identity-access/company-service/ports"
	httptransport "internhub/contexts/identity-access/company-service/transport/http"
	"internhub/internal/shared/scope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterCompanyRequest) (httptransport.RegisterCompanyResponse, error) {
	result, err := h.Service.Register(ctx, application.RegisterCommand{
		Username:    req.Username,
		Email:       req.Email,
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.RegisterCompanyResponse{}, err
	}
	return httptransport.RegisterCompanyResponse{
		Message: "company registration submitted, awaiting admin verification",
		Identity: httptransport.IdentityDTO{
			IdentityID: result.Identity.IdentityID,
			Username:   result.Identity.Username,
			Email:      result.Identity.Email,
			Role:       result.Identity.Role,
		},
		Company: mapCompany(result.Company, ""),
	}, nil
}

func (h Handler) VerifyHandler(ctx context.Context, callerRole string, companyID string, req httptransport.VerifyCompanyRequest) (httptransport.VerifyCompanyResponse, error) {
	company, err := h.Service.Verify(ctx, application.VerifyCommand{
		CompanyID:    companyID,
		TargetStatus: req.Status,
		CallerRole:   scope.ParseRole(callerRole),
	})
	if err != nil {
		return httptransport.VerifyCompanyResponse{}, err
	}
	return httptransport.VerifyCompanyResponse{Company: mapCompany(company, "")}, nil
}

func (h Handler) LoginGateHandler(ctx context.Context, req httptransport.LoginGateRequest) error {
	return h.Service.LoginGate(ctx, req.IdentityID, scope.ParseRole(req.Role))
}

func (h Handler) ProfileHandler(ctx context.Context, identityID string) (httptransport.CompanyDTO, error) {
	company, err := h.Service.Profile(ctx, identityID)
	if err != nil {
		return httptransport.CompanyDTO{}, err
	}
	return mapCompany(company, ""), nil
}

func (h Handler) StatusHandler(ctx context.Context, identityID string) (httptransport.CompanyStatusResponse, error) {
	status, err := h.Service.Status(ctx, identityID)
	if err != nil {
		return httptransport.CompanyStatusResponse{}, err
	}
	return httptransport.CompanyStatusResponse{Status: string(status)}, nil
}

func (h Handler) ListApprovedHandler(ctx context.Context) (httptransport.ListCompaniesResponse, error) {
	items, err := h.Service.ListApproved(ctx)
	if err != nil {
		return httptransport.ListCompaniesResponse{}, err
	}
	return mapProfiles(items), nil
}

func (h Handler) ListPendingHandler(ctx context.Context) (httptransport.ListCompaniesResponse, error) {
	items, err := h.Service.ListPending(ctx)
	if err != nil {
		return httptransport.ListCompaniesResponse{}, err
	}
	return mapProfiles(items), nil
}

func mapProfiles(items []ports.CompanyProfile) httptransport.ListCompaniesResponse {
	result := make([]httptransport.CompanyDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCompany(item.Company, item.Username))
	}
	return httptransport.ListCompaniesResponse{Items: result}
}

func mapCompany(item entities.Company, username string) httptransport.CompanyDTO {
	return httptransport.CompanyDTO{
		CompanyID:   item.CompanyID,
		IdentityID:  item.IdentityID,
		Name:        item.Name,
		Email:       item.Email,
		Website:     item.Website,
		Description: item.Description,
		Status:      string(item.Status),
		Username:    username,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}
