package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/contexts/recruiting/internship-service/adapters/memory"
	"internhub/contexts/recruiting/internship-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/internship-service/domain/errors"
	"internhub/contexts/recruiting/internship-service/ports"
	"internhub/internal/shared/scope"
)

func newService() Service {
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.Seed{
		Internships: []entities.Internship{
			{InternshipID: "i-1", CompanyID: "c-1", Title: "Backend Intern", CreatedAt: base},
			{InternshipID: "i-2", CompanyID: "c-2", Title: "Data Intern", CreatedAt: base.Add(time.Hour)},
		},
		Companies: []memory.CompanyProjection{
			{Ref: ports.CompanyRef{CompanyID: "c-1", Name: "Acme", Website: "https://acme.test"}, IdentityID: "acme-identity"},
			{Ref: ports.CompanyRef{CompanyID: "c-2", Name: "Globex"}, IdentityID: "globex-identity"},
		},
		ApplicationCounts: map[string]int64{"i-1": 3},
	})
	return Service{Repo: store, Clock: store, IDGen: store}
}

func TestCreateRequiresCompanyRole(t *testing.T) {
	svc := newService()
	for _, role := range []scope.Role{scope.RoleStudent, scope.RoleAdmin, scope.ParseRole("")} {
		_, err := svc.Create(context.Background(), CreateCommand{
			CallerIdentityID: "acme-identity",
			CallerRole:       role,
			Title:            "New Intern",
		})
		if !errors.Is(err, domainerrors.ErrCompanyRoleRequired) {
			t.Fatalf("role %q: expected company role required, got %v", role, err)
		}
	}
}

func TestCreateResolvesOwningCompany(t *testing.T) {
	svc := newService()
	internship, err := svc.Create(context.Background(), CreateCommand{
		CallerIdentityID: "acme-identity",
		CallerRole:       scope.RoleCompany,
		Title:            "Platform Intern",
		Location:         "Remote",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if internship.CompanyID != "c-1" {
		t.Fatalf("expected owner c-1, got %s", internship.CompanyID)
	}
}

func TestCreateUnknownIdentityNotFound(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), CreateCommand{
		CallerIdentityID: "nobody",
		CallerRole:       scope.RoleCompany,
		Title:            "Ghost Intern",
	})
	if !errors.Is(err, domainerrors.ErrCompanyNotFound) {
		t.Fatalf("expected company not found, got %v", err)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), CreateCommand{
		CallerIdentityID: "acme-identity",
		CallerRole:       scope.RoleCompany,
		Title:            "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestListJoinsCompanyAndCounts(t *testing.T) {
	svc := newService()
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(items))
	}
	// Newest first: i-2 before i-1.
	if items[0].Internship.InternshipID != "i-2" {
		t.Fatalf("expected i-2 first, got %s", items[0].Internship.InternshipID)
	}
	if items[1].Company.Name != "Acme" || items[1].ApplicationCount != 3 {
		t.Fatalf("expected Acme listing with 3 applications, got %+v", items[1])
	}
}

func TestListForCompanyScopesToOwner(t *testing.T) {
	svc := newService()
	items, err := svc.ListForCompany(context.Background(), "globex-identity")
	if err != nil {
		t.Fatalf("list for company failed: %v", err)
	}
	if len(items) != 1 || items[0].Internship.InternshipID != "i-2" {
		t.Fatalf("expected only i-2, got %+v", items)
	}
}

func TestGetUnknownInternship(t *testing.T) {
	svc := newService()
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrInternshipNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, domainerrors.ErrInternshipNotFound) {
		t.Fatalf("expected not found for blank id, got %v", err)
	}
}
