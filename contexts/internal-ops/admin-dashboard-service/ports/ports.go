package ports

import (
	"context"
	"time"
)

// DashboardStats is the marketplace-wide aggregate snapshot shown on the
// admin dashboard. ReviewAverage is 0 when ReviewCount is 0.
type DashboardStats struct {
	Students          int64
	Companies         int64
	CompaniesPending  int64
	CompaniesApproved int64
	CompaniesRejected int64
	Internships       int64
	Applications      int64
	ReviewCount       int64
	ReviewAverage     float64
}

// UserRecord and CompanyRecord are the flattened rows the admin list views
// read; both are projections of tables owned by other contexts.
type UserRecord struct {
	IdentityID string
	Username   string
	Email      string
	Role       string
	CreatedAt  time.Time
}

type CompanyRecord struct {
	CompanyID string
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

// ListOptions selects and orders an admin list. Unknown SortBy values fall
// back to created_at descending.
type ListOptions struct {
	Filter    string
	SortBy    string
	Ascending bool
}

type StatsRepository interface {
	CountIdentitiesByRole(ctx context.Context) (map[string]int64, error)
	CountCompaniesByStatus(ctx context.Context) (map[string]int64, error)
	CountInternships(ctx context.Context) (int64, error)
	CountApplications(ctx context.Context) (int64, error)

	// ReviewStats returns the review count and the raw mean rating.
	ReviewStats(ctx context.Context) (int64, float64, error)

	// ListUsers filters by role; ListCompanies filters by status.
	ListUsers(ctx context.Context, opts ListOptions) ([]UserRecord, error)
	ListCompanies(ctx context.Context, opts ListOptions) ([]CompanyRecord, error)
}

// AuditEntry records one administrative decision, verification calls
// included, for later inspection.
type AuditEntry struct {
	AuditID       string
	ActorID       string
	Action        string
	TargetID      string
	Justification string
	OccurredAt    time.Time
	SourceIP      string
	CorrelationID string
}

type AuditRepository interface {
	AppendAuditEntry(ctx context.Context, row AuditEntry) error
	ListRecentAuditEntries(ctx context.Context, limit int) ([]AuditEntry, error)
}

type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	ResponseBody []byte
	ExpiresAt    time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (*IdempotencyRecord, error)
	Reserve(ctx context.Context, key, requestHash string, expiresAt time.Time) error
	Complete(ctx context.Context, key string, responseBody []byte, at time.Time) error
}

type Clock interface {
	Now() time.Time
}
