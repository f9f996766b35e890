package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/contexts/recruiting/application-service/adapters/memory"
	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"
	"internhub/internal/shared/scope"
)

func seededQueries() QueryUseCase {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.Seed{
		Applications: []entities.Application{
			{ApplicationID: "a-1", StudentID: "s-1", InternshipID: "i-1", Status: entities.ApplicationStatusAccepted, CreatedAt: base, UpdatedAt: base},
			{ApplicationID: "a-2", StudentID: "s-1", InternshipID: "i-2", Status: entities.ApplicationStatusPending, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
			{ApplicationID: "a-3", StudentID: "s-2", InternshipID: "i-1", Status: entities.ApplicationStatusRejected, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
			{ApplicationID: "a-4", StudentID: "s-1", InternshipID: "i-3", Status: entities.ApplicationStatusAccepted, CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
		},
		Internships: []ports.InternshipRef{
			{InternshipID: "i-1", CompanyID: "c-1", Title: "Backend Intern"},
			{InternshipID: "i-2", CompanyID: "c-2", Title: "Data Intern"},
			{InternshipID: "i-3", CompanyID: "c-1", Title: "Platform Intern"},
		},
		Companies: []memory.CompanyProjection{
			{Ref: ports.CompanyRef{CompanyID: "c-1", Name: "Acme"}, IdentityID: "acme-identity"},
			{Ref: ports.CompanyRef{CompanyID: "c-2", Name: "Globex"}, IdentityID: "globex-identity"},
		},
		Students: []ports.StudentRef{
			{StudentID: "s-1", Username: "alice", Email: "alice@uni.test"},
			{StudentID: "s-2", Username: "bob", Email: "bob@uni.test"},
		},
	})
	return QueryUseCase{Repository: store}
}

func TestListForCallerAdminSeesEverything(t *testing.T) {
	uc := seededQueries()
	items, err := uc.ListForCaller(context.Background(), "admin-1", scope.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 applications, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Application.CreatedAt.After(items[i-1].Application.CreatedAt) {
			t.Fatal("expected newest-first ordering")
		}
	}
}

func TestListForCallerCompanySeesOnlyOwnInternships(t *testing.T) {
	uc := seededQueries()
	items, err := uc.ListForCaller(context.Background(), "acme-identity", scope.RoleCompany)
	if err != nil {
		t.Fatalf("company list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 applications for c-1, got %d", len(items))
	}
	for _, item := range items {
		if item.Internship.CompanyID != "c-1" {
			t.Fatalf("leaked application %s owned by %s", item.Application.ApplicationID, item.Internship.CompanyID)
		}
	}
}

func TestListForCallerStudentSeesOnlyOwn(t *testing.T) {
	uc := seededQueries()
	items, err := uc.ListForCaller(context.Background(), "s-2", scope.RoleStudent)
	if err != nil {
		t.Fatalf("student list failed: %v", err)
	}
	if len(items) != 1 || items[0].Application.ApplicationID != "a-3" {
		t.Fatalf("expected only a-3, got %+v", items)
	}
}

func TestListForCallerCompanyWithoutProfileForbidden(t *testing.T) {
	uc := seededQueries()
	_, err := uc.ListForCaller(context.Background(), "no-profile", scope.RoleCompany)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListForCallerUnknownRoleForbidden(t *testing.T) {
	uc := seededQueries()
	_, err := uc.ListForCaller(context.Background(), "x", scope.ParseRole("moderator"))
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestGetForCallerOutsideScopeIsNotFound(t *testing.T) {
	uc := seededQueries()

	// Globex may not see an Acme application, and the error must not reveal
	// that the id exists.
	_, err := uc.GetForCaller(context.Background(), "globex-identity", scope.RoleCompany, "a-1")
	if !errors.Is(err, domainerrors.ErrApplicationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetForCallerOwnApplication(t *testing.T) {
	uc := seededQueries()
	detail, err := uc.GetForCaller(context.Background(), "s-1", scope.RoleStudent, "a-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Company.Name != "Acme" || detail.Student.Username != "alice" {
		t.Fatalf("expected joined detail, got %+v", detail)
	}
}

func TestCountForInternship(t *testing.T) {
	uc := seededQueries()
	count, err := uc.CountForInternship(context.Background(), "i-1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 applications for i-1, got %d", count)
	}

	if _, err := uc.CountForInternship(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrInternshipNotFound) {
		t.Fatalf("expected internship not found, got %v", err)
	}
}

func TestAcceptedCompaniesDeduplicates(t *testing.T) {
	uc := seededQueries()

	// s-1 has two accepted applications at c-1 internships; the company
	// appears once.
	companies, err := uc.AcceptedCompaniesForStudent(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("accepted companies failed: %v", err)
	}
	if len(companies) != 1 || companies[0].CompanyID != "c-1" {
		t.Fatalf("expected single entry for c-1, got %+v", companies)
	}
}

func TestAcceptedCompaniesEmptyWithoutAcceptance(t *testing.T) {
	uc := seededQueries()
	companies, err := uc.AcceptedCompaniesForStudent(context.Background(), "s-2")
	if err != nil {
		t.Fatalf("accepted companies failed: %v", err)
	}
	if len(companies) != 0 {
		t.Fatalf("expected no reviewable companies, got %+v", companies)
	}
}
