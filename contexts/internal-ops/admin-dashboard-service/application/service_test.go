package application

import (
	"context"
	"testing"
	"time"

	"internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	domainerrors "internhub/contexts/internal-ops/admin-dashboard-service/domain/errors"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"
	"internhub/internal/shared/scope"

	"github.com/stretchr/testify/assert"
)

func seededService() Service {
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.Seed{
		Users: []ports.UserRecord{
			{IdentityID: "u-1", Username: "alice", Email: "alice@uni.test", Role: "STUDENT", CreatedAt: base},
			{IdentityID: "u-2", Username: "bob", Email: "bob@uni.test", Role: "STUDENT", CreatedAt: base.Add(time.Hour)},
			{IdentityID: "u-3", Username: "acme-hr", Email: "hr@acme.test", Role: "COMPANY", CreatedAt: base.Add(2 * time.Hour)},
			{IdentityID: "u-4", Username: "root", Email: "root@internhub.test", Role: "ADMIN", CreatedAt: base.Add(3 * time.Hour)},
		},
		Companies: []ports.CompanyRecord{
			{CompanyID: "c-1", Name: "Acme", Email: "hr@acme.test", Status: "APPROVED", CreatedAt: base},
			{CompanyID: "c-2", Name: "Globex", Email: "jobs@globex.test", Status: "PENDING", CreatedAt: base.Add(time.Hour)},
			{CompanyID: "c-3", Name: "Initech", Email: "work@initech.test", Status: "REJECTED", CreatedAt: base.Add(2 * time.Hour)},
		},
		Internships:  5,
		Applications: 12,
		Ratings:      []int{4, 5, 3},
	})
	return Service{Stats: store, Audit: store, Idempotency: store, Clock: store}
}

func TestDashboardStatsAdminOnly(t *testing.T) {
	svc := seededService()
	_, err := svc.DashboardStats(context.Background(), scope.RoleCompany)
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
}

func TestDashboardStatsAggregates(t *testing.T) {
	svc := seededService()
	stats, err := svc.DashboardStats(context.Background(), scope.RoleAdmin)
	assert.NoError(t, err)

	assert.Equal(t, int64(2), stats.Students)
	assert.Equal(t, int64(1), stats.Companies)
	assert.Equal(t, int64(1), stats.CompaniesPending)
	assert.Equal(t, int64(1), stats.CompaniesApproved)
	assert.Equal(t, int64(1), stats.CompaniesRejected)
	assert.Equal(t, int64(5), stats.Internships)
	assert.Equal(t, int64(12), stats.Applications)
	assert.Equal(t, int64(3), stats.ReviewCount)
	// (4 + 5 + 3) / 3 = 4.0
	assert.Equal(t, 4.0, stats.ReviewAverage)
}

func TestListUsersFiltersByRole(t *testing.T) {
	svc := seededService()
	users, err := svc.ListUsers(context.Background(), scope.RoleAdmin, ports.ListOptions{Filter: "student"})
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, user := range users {
		assert.Equal(t, "STUDENT", user.Role)
	}
}

func TestListUsersSortsByUsername(t *testing.T) {
	svc := seededService()
	users, err := svc.ListUsers(context.Background(), scope.RoleAdmin, ports.ListOptions{
		SortBy:    "username",
		Ascending: true,
	})
	assert.NoError(t, err)
	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, user.Username)
	}
	assert.Equal(t, []string{"acme-hr", "alice", "bob", "root"}, names)
}

func TestListUsersUnknownSortFallsBackToNewestFirst(t *testing.T) {
	svc := seededService()
	users, err := svc.ListUsers(context.Background(), scope.RoleAdmin, ports.ListOptions{
		SortBy:    "password",
		Ascending: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "u-4", users[0].IdentityID)
	assert.Equal(t, "u-1", users[len(users)-1].IdentityID)
}

func TestListCompaniesFiltersByStatus(t *testing.T) {
	svc := seededService()
	companies, err := svc.ListCompanies(context.Background(), scope.RoleAdmin, ports.ListOptions{Filter: "PENDING"})
	assert.NoError(t, err)
	assert.Len(t, companies, 1)
	assert.Equal(t, "Globex", companies[0].Name)
}

func TestListCompaniesAdminOnly(t *testing.T) {
	svc := seededService()
	_, err := svc.ListCompanies(context.Background(), scope.RoleStudent, ports.ListOptions{})
	assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
}

func TestRecordAdminActionIdempotent(t *testing.T) {
	svc := seededService()
	ctx := context.Background()
	input := RecordActionInput{
		ActorID:       "u-4",
		Action:        "company.verify",
		TargetID:      "c-2",
		Justification: "documents checked",
	}

	first, err := svc.RecordAdminAction(ctx, scope.RoleAdmin, "key-1", input)
	assert.NoError(t, err)

	second, err := svc.RecordAdminAction(ctx, scope.RoleAdmin, "key-1", input)
	assert.NoError(t, err)
	assert.Equal(t, first.AuditID, second.AuditID)

	entries, err := svc.ListRecentActions(ctx, scope.RoleAdmin, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecordAdminActionKeyReuseConflicts(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	_, err := svc.RecordAdminAction(ctx, scope.RoleAdmin, "key-1", RecordActionInput{
		ActorID: "u-4", Action: "company.verify", TargetID: "c-2", Justification: "ok",
	})
	assert.NoError(t, err)

	_, err = svc.RecordAdminAction(ctx, scope.RoleAdmin, "key-1", RecordActionInput{
		ActorID: "u-4", Action: "company.verify", TargetID: "c-3", Justification: "different target",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyConflict)
}

func TestRecordAdminActionRequiresKeyAndFields(t *testing.T) {
	svc := seededService()
	ctx := context.Background()

	_, err := svc.RecordAdminAction(ctx, scope.RoleAdmin, "", RecordActionInput{
		ActorID: "u-4", Action: "company.verify", Justification: "ok",
	})
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyRequired)

	_, err = svc.RecordAdminAction(ctx, scope.RoleAdmin, "key-2", RecordActionInput{
		ActorID: "u-4", Action: "company.verify",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
