package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	domainerrors "internhub/contexts/internal-ops/admin-dashboard-service/domain/errors"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"
	"internhub/internal/shared/scope"
)

type Service struct {
	Stats          ports.StatsRepository
	Audit          ports.AuditRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// DashboardStats assembles the marketplace snapshot. Admin only.
func (s Service) DashboardStats(ctx context.Context, callerRole scope.Role) (ports.DashboardStats, error) {
	if callerRole != scope.RoleAdmin {
		return ports.DashboardStats{}, domainerrors.ErrAdminOnly
	}

	byRole, err := s.Stats.CountIdentitiesByRole(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	byStatus, err := s.Stats.CountCompaniesByStatus(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	internships, err := s.Stats.CountInternships(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	applications, err := s.Stats.CountApplications(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}
	reviewCount, reviewMean, err := s.Stats.ReviewStats(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}

	stats := ports.DashboardStats{
		Students:          byRole[string(scope.RoleStudent)],
		Companies:         byRole[string(scope.RoleCompany)],
		CompaniesPending:  byStatus["PENDING"],
		CompaniesApproved: byStatus["APPROVED"],
		CompaniesRejected: byStatus["REJECTED"],
		Internships:       internships,
		Applications:      applications,
		ReviewCount:       reviewCount,
	}
	if reviewCount > 0 {
		stats.ReviewAverage = math.Round(reviewMean*10) / 10
	}
	return stats, nil
}

// userSortColumns and companySortColumns whitelist the sortable fields; any
// other value falls back to created_at descending.
var userSortColumns = map[string]bool{
	"created_at": true,
	"username":   true,
	"email":      true,
	"role":       true,
}

var companySortColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"email":      true,
	"status":     true,
}

func (s Service) ListUsers(ctx context.Context, callerRole scope.Role, opts ports.ListOptions) ([]ports.UserRecord, error) {
	if callerRole != scope.RoleAdmin {
		return nil, domainerrors.ErrAdminOnly
	}
	return s.Stats.ListUsers(ctx, normalizeOptions(opts, userSortColumns))
}

func (s Service) ListCompanies(ctx context.Context, callerRole scope.Role, opts ports.ListOptions) ([]ports.CompanyRecord, error) {
	if callerRole != scope.RoleAdmin {
		return nil, domainerrors.ErrAdminOnly
	}
	return s.Stats.ListCompanies(ctx, normalizeOptions(opts, companySortColumns))
}

func normalizeOptions(opts ports.ListOptions, allowed map[string]bool) ports.ListOptions {
	opts.Filter = strings.ToUpper(strings.TrimSpace(opts.Filter))
	opts.SortBy = strings.ToLower(strings.TrimSpace(opts.SortBy))
	if !allowed[opts.SortBy] {
		opts.SortBy = "created_at"
		opts.Ascending = false
	}
	return opts
}

type RecordActionInput struct {
	ActorID       string
	Action        string
	TargetID      string
	Justification string
	SourceIP      string
	CorrelationID string
}

// RecordAdminAction appends a decision to the audit trail. The idempotency
// key lets retried submissions return the original entry instead of
// duplicating it; a reused key with a different payload is a conflict.
func (s Service) RecordAdminAction(ctx context.Context, callerRole scope.Role, idempotencyKey string, input RecordActionInput) (ports.AuditEntry, error) {
	if callerRole != scope.RoleAdmin {
		return ports.AuditEntry{}, domainerrors.ErrAdminOnly
	}
	if strings.TrimSpace(input.ActorID) == "" ||
		strings.TrimSpace(input.Action) == "" ||
		strings.TrimSpace(input.Justification) == "" {
		return ports.AuditEntry{}, domainerrors.ErrInvalidInput
	}
	if strings.TrimSpace(idempotencyKey) == "" {
		return ports.AuditEntry{}, domainerrors.ErrIdempotencyRequired
	}

	now := s.Clock.Now().UTC()
	ttl := s.IdempotencyTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	requestHash := hashPayload(input)

	existing, err := s.Idempotency.Get(ctx, idempotencyKey, now)
	if err != nil {
		return ports.AuditEntry{}, err
	}
	if existing != nil {
		if existing.RequestHash != requestHash {
			return ports.AuditEntry{}, domainerrors.ErrIdempotencyConflict
		}
		var cached ports.AuditEntry
		if err := json.Unmarshal(existing.ResponseBody, &cached); err != nil {
			return ports.AuditEntry{}, err
		}
		return cached, nil
	}
	if err := s.Idempotency.Reserve(ctx, idempotencyKey, requestHash, now.Add(ttl)); err != nil {
		return ports.AuditEntry{}, err
	}

	entry := ports.AuditEntry{
		AuditID:       fmt.Sprintf("audit_%d", now.UnixNano()),
		ActorID:       strings.TrimSpace(input.ActorID),
		Action:        strings.TrimSpace(input.Action),
		TargetID:      strings.TrimSpace(input.TargetID),
		Justification: strings.TrimSpace(input.Justification),
		OccurredAt:    now,
		SourceIP:      strings.TrimSpace(input.SourceIP),
		CorrelationID: strings.TrimSpace(input.CorrelationID),
	}
	if err := s.Audit.AppendAuditEntry(ctx, entry); err != nil {
		return ports.AuditEntry{}, err
	}
	body, err := json.Marshal(entry)
	if err != nil {
		return ports.AuditEntry{}, err
	}
	if err := s.Idempotency.Complete(ctx, idempotencyKey, body, now); err != nil {
		return ports.AuditEntry{}, err
	}

	s.logger().Info("admin action recorded",
		"event", "admin_action_recorded",
		"module", "internal-ops/admin-dashboard-service",
		"layer", "application",
		"action", entry.Action,
		"target_id", entry.TargetID,
	)
	return entry, nil
}

func (s Service) ListRecentActions(ctx context.Context, callerRole scope.Role, limit int) ([]ports.AuditEntry, error) {
	if callerRole != scope.RoleAdmin {
		return nil, domainerrors.ErrAdminOnly
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return s.Audit.ListRecentAuditEntries(ctx, limit)
}

func hashPayload(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
