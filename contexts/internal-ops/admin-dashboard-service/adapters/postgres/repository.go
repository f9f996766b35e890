package postgresadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"internhub/contexts/internal-ops/admin-dashboard-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type roleCountRow struct {
	Role  string `gorm:"column:role"`
	Count int64  `gorm:"column:count"`
}

func (r *Repository) CountIdentitiesByRole(ctx context.Context) (map[string]int64, error) {
	var rows []roleCountRow
	err := r.db.WithContext(ctx).
		Table("identities").
		Select("role, COUNT(*) AS count").
		Group("role").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

type statusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

func (r *Repository) CountCompaniesByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *Repository) CountInternships(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "internships")
}

func (r *Repository) CountApplications(ctx context.Context) (int64, error) {
	return r.countTable(ctx, "applications")
}

func (r *Repository) countTable(ctx context.Context, table string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Count(&count).Error
	return count, err
}

func (r *Repository) ReviewStats(ctx context.Context) (int64, float64, error) {
	var row struct {
		Count   int64   `gorm:"column:count"`
		Average float64 `gorm:"column:average"`
	}
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Scan(&row).
		Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Average, nil
}

func (r *Repository) ListUsers(ctx context.Context, opts ports.ListOptions) ([]ports.UserRecord, error) {
	tx := r.db.WithContext(ctx).Table("identities").
		Select("identity_id, username, email, role, created_at")
	if opts.Filter != "" {
		tx = tx.Where("role = ?", opts.Filter)
	}

	var rows []userRow
	if err := tx.Order(orderClause(opts)).Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.UserRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.UserRecord{
			IdentityID: row.IdentityID,
			Username:   row.Username,
			Email:      row.Email,
			Role:       row.Role,
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) ListCompanies(ctx context.Context, opts ports.ListOptions) ([]ports.CompanyRecord, error) {
	tx := r.db.WithContext(ctx).Table("companies").
		Select("company_id, name, email, status, created_at")
	if opts.Filter != "" {
		tx = tx.Where("status = ?", opts.Filter)
	}

	var rows []companyRow
	if err := tx.Order(orderClause(opts)).Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.CompanyRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.CompanyRecord{
			CompanyID: row.CompanyID,
			Name:      row.Name,
			Email:     row.Email,
			Status:    row.Status,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

// orderClause builds the ORDER BY from an already whitelisted sort column.
func orderClause(opts ports.ListOptions) string {
	direction := "DESC"
	if opts.Ascending {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", opts.SortBy, direction)
}

func (r *Repository) AppendAuditEntry(ctx context.Context, row ports.AuditEntry) error {
	return r.db.WithContext(ctx).Create(&auditEntryModel{
		AuditID:       row.AuditID,
		ActorID:       row.ActorID,
		Action:        row.Action,
		TargetID:      row.TargetID,
		Justification: row.Justification,
		OccurredAt:    row.OccurredAt.UTC(),
		SourceIP:      row.SourceIP,
		CorrelationID: row.CorrelationID,
	}).Error
}

func (r *Repository) ListRecentAuditEntries(ctx context.Context, limit int) ([]ports.AuditEntry, error) {
	var rows []auditEntryModel
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.AuditEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.AuditEntry{
			AuditID:       row.AuditID,
			ActorID:       row.ActorID,
			Action:        row.Action,
			TargetID:      row.TargetID,
			Justification: row.Justification,
			OccurredAt:    row.OccurredAt.UTC(),
			SourceIP:      row.SourceIP,
			CorrelationID: row.CorrelationID,
		})
	}
	return items, nil
}

type userRow struct {
	IdentityID string    `gorm:"column:identity_id"`
	Username   string    `gorm:"column:username"`
	Email      string    `gorm:"column:email"`
	Role       string    `gorm:"column:role"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

type companyRow struct {
	CompanyID string    `gorm:"column:company_id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

type auditEntryModel struct {
	AuditID       string    `gorm:"column:audit_id;primaryKey"`
	ActorID       string    `gorm:"column:actor_id"`
	Action        string    `gorm:"column:action"`
	TargetID      string    `gorm:"column:target_id"`
	Justification string    `gorm:"column:justification"`
	OccurredAt    time.Time `gorm:"column:occurred_at"`
	SourceIP      string    `gorm:"column:source_ip"`
	CorrelationID string    `gorm:"column:correlation_id"`
}

func (auditEntryModel) TableName() string {
	return "admin_audit_log"
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
