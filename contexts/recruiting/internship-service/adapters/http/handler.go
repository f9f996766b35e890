package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"internhub/contexts/recruiting/internship-service/application"
	"internhub/contexts/recruiting/internship-service/domain/entities"
	"internhub/contexts/recruiting/internship-service/ports"
	httptransport "internhub/contexts/recruiting/internship-service/transport/http"
	"internhub/internal/shared/scope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateInternshipHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
	req httptransport.CreateInternshipRequest,
) (httptransport.CreateInternshipResponse, error) {
	item, err := h.Service.Create(ctx, application.CreateCommand{
		CallerIdentityID: callerID,
		CallerRole:       scope.ParseRole(callerRole),
		Title:            req.Title,
		Location:         req.Location,
		Description:      req.Description,
	})
	if err != nil {
		return httptransport.CreateInternshipResponse{}, err
	}
	return httptransport.CreateInternshipResponse{
		Internship: mapInternship(item, ports.CompanyRef{}, 0),
	}, nil
}

func (h Handler) GetInternshipHandler(ctx context.Context, internshipID string) (httptransport.GetInternshipResponse, error) {
	item, err := h.Service.Get(ctx, internshipID)
	if err != nil {
		return httptransport.GetInternshipResponse{}, err
	}
	return httptransport.GetInternshipResponse{
		Internship: mapInternship(item, ports.CompanyRef{}, 0),
	}, nil
}

func (h Handler) ListInternshipsHandler(ctx context.Context) (httptransport.ListInternshipsResponse, error) {
	items, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListInternshipsResponse{}, err
	}
	return mapListings(items), nil
}

func (h Handler) ListCompanyInternshipsHandler(ctx context.Context, callerID string) (httptransport.ListInternshipsResponse, error) {
	items, err := h.Service.ListForCompany(ctx, callerID)
	if err != nil {
		return httptransport.ListInternshipsResponse{}, err
	}
	return mapListings(items), nil
}

func mapListings(items []ports.InternshipListing) httptransport.ListInternshipsResponse {
	result := make([]httptransport.InternshipDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapInternship(item.Internship, item.Company, item.ApplicationCount))
	}
	return httptransport.ListInternshipsResponse{Items: result}
}

func mapInternship(item entities.Internship, company ports.CompanyRef, count int64) httptransport.InternshipDTO {
	return httptransport.InternshipDTO{
		InternshipID:     item.InternshipID,
		CompanyID:        item.CompanyID,
		Title:            item.Title,
		Location:         item.Location,
		Description:      item.Description,
		CompanyName:      company.Name,
		CompanyWebsite:   company.Website,
		ApplicationCount: count,
		CreatedAt:        item.CreatedAt.Format(time.RFC3339),
	}
}
