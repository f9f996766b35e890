package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"internhub/contexts/internal-ops/admin-dashboard-service/application"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"
	httptransport "internhub/contexts/internal-ops/admin-dashboard-service/transport/http"
	"internhub/internal/shared/scope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) DashboardStatsHandler(ctx context.Context, callerRole string) (httptransport.DashboardStatsResponse, error) {
	stats, err := h.Service.DashboardStats(ctx, scope.ParseRole(callerRole))
	if err != nil {
		return httptransport.DashboardStatsResponse{}, err
	}
	return httptransport.DashboardStatsResponse{
		Students:          stats.Students,
		Companies:         stats.Companies,
		CompaniesPending:  stats.CompaniesPending,
		CompaniesApproved: stats.CompaniesApproved,
		CompaniesRejected: stats.CompaniesRejected,
		Internships:       stats.Internships,
		Applications:      stats.Applications,
		ReviewCount:       stats.ReviewCount,
		ReviewAverage:     stats.ReviewAverage,
	}, nil
}

func (h Handler) ListUsersHandler(
	ctx context.Context,
	callerRole string,
	roleFilter string,
	sortBy string,
	order string,
) (httptransport.ListUsersResponse, error) {
	users, err := h.Service.ListUsers(ctx, scope.ParseRole(callerRole), ports.ListOptions{
		Filter:    roleFilter,
		SortBy:    sortBy,
		Ascending: order == "asc",
	})
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	items := make([]httptransport.AdminUserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, httptransport.AdminUserDTO{
			IdentityID: user.IdentityID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.ListUsersResponse{Items: items}, nil
}

func (h Handler) ListCompaniesHandler(
	ctx context.Context,
	callerRole string,
	statusFilter string,
	sortBy string,
	order string,
) (httptransport.ListCompaniesResponse, error) {
	companies, err := h.Service.ListCompanies(ctx, scope.ParseRole(callerRole), ports.ListOptions{
		Filter:    statusFilter,
		SortBy:    sortBy,
		Ascending: order == "asc",
	})
	if err != nil {
		return httptransport.ListCompaniesResponse{}, err
	}
	items := make([]httptransport.AdminCompanyDTO, 0, len(companies))
	for _, company := range companies {
		items = append(items, httptransport.AdminCompanyDTO{
			CompanyID: company.CompanyID,
			Name:      company.Name,
			Email:     company.Email,
			Status:    company.Status,
			CreatedAt: company.CreatedAt.Format(time.RFC3339),
		})
	}
	return httptransport.ListCompaniesResponse{Items: items}, nil
}

func (h Handler) RecordAdminActionHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
	idempotencyKey string,
	req httptransport.RecordAdminActionRequest,
) (httptransport.RecordAdminActionResponse, error) {
	entry, err := h.Service.RecordAdminAction(ctx, scope.ParseRole(callerRole), idempotencyKey, application.RecordActionInput{
		ActorID:       callerID,
		Action:        req.Action,
		TargetID:      req.TargetID,
		Justification: req.Justification,
		SourceIP:      req.SourceIP,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		return httptransport.RecordAdminActionResponse{}, err
	}
	return httptransport.RecordAdminActionResponse{
		AuditID:    entry.AuditID,
		OccurredAt: entry.OccurredAt.UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) ListAuditEntriesHandler(ctx context.Context, callerRole string, limit int) (httptransport.ListAuditEntriesResponse, error) {
	entries, err := h.Service.ListRecentActions(ctx, scope.ParseRole(callerRole), limit)
	if err != nil {
		return httptransport.ListAuditEntriesResponse{}, err
	}
	items := make([]httptransport.AuditEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, httptransport.AuditEntryDTO{
			AuditID:       entry.AuditID,
			ActorID:       entry.ActorID,
			Action:        entry.Action,
			TargetID:      entry.TargetID,
			Justification: entry.Justification,
			OccurredAt:    entry.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.ListAuditEntriesResponse{Items: items}, nil
}
