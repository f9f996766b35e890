package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reviewservice "internhub/contexts/community/review-service"
	reviewmemory "internhub/contexts/community/review-service/adapters/memory"
	companyservice "internhub/contexts/identity-access/company-service"
	admindashboardservice "internhub/contexts/internal-ops/admin-dashboard-service"
	adminmemory "internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	applicationservice "internhub/contexts/recruiting/application-service"
	applicationmemory "internhub/contexts/recruiting/application-service/adapters/memory"
	applicationentities "internhub/contexts/recruiting/application-service/domain/entities"
	applicationports "internhub/contexts/recruiting/application-service/ports"
	internshipservice "internhub/contexts/recruiting/internship-service"
	internshipmemory "internhub/contexts/recruiting/internship-service/adapters/memory"
)

func newSeededApplicationServer() *Server {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	applications := applicationservice.NewInMemoryModule(applicationmemory.Seed{
		Applications: []applicationentities.Application{
			{
				ApplicationID: "a-1",
				StudentID:     "s-1",
				InternshipID:  "i-1",
				Status:        applicationentities.ApplicationStatusPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		Internships: []applicationports.InternshipRef{
			{InternshipID: "i-1", CompanyID: "c-1", Title: "Backend Intern"},
		},
		Companies: []applicationmemory.CompanyProjection{
			{Ref: applicationports.CompanyRef{CompanyID: "c-1", Name: "Acme"}, IdentityID: "acme-identity"},
			{Ref: applicationports.CompanyRef{CompanyID: "c-2", Name: "Globex"}, IdentityID: "globex-identity"},
		},
	}, slog.Default())

	return New(
		companyservice.NewInMemoryModule(nil, slog.Default()),
		internshipservice.NewInMemoryModule(internshipmemory.Seed{}, slog.Default()),
		applications,
		reviewservice.NewInMemoryModule(reviewmemory.Seed{}, slog.Default()),
		admindashboardservice.NewInMemoryModule(adminmemory.Seed{}, slog.Default()),
		slog.Default(),
		":0",
	)
}

func TestApplyRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader([]byte(`{"internship_id":"i-1"}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApplyRequiresStudentRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewReader([]byte(`{"internship_id":"i-1"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "acme-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateApplicationStatusForbiddenForStudents(t *testing.T) {
	server := newSeededApplicationServer()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/a-1/status", bytes.NewReader([]byte(`{"status":"ACCEPTED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "s-1")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateApplicationStatusForbiddenForOtherCompany(t *testing.T) {
	server := newSeededApplicationServer()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/a-1/status", bytes.NewReader([]byte(`{"status":"ACCEPTED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "globex-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateApplicationStatusByOwningCompany(t *testing.T) {
	server := newSeededApplicationServer()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/a-1/status", bytes.NewReader([]byte(`{"status":"ACCEPTED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "acme-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"status":"ACCEPTED"`)) {
		t.Fatalf("expected ACCEPTED application, got %s", rr.Body.String())
	}
}

func TestGetApplicationHidesForeignRecords(t *testing.T) {
	server := newSeededApplicationServer()
	req := httptest.NewRequest(http.MethodGet, "/api/applications/a-1", nil)
	req.Header.Set("X-User-Id", "globex-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign application, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListApplicationsRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReviewableCompaniesRequiresStudentRole(t *testing.T) {
	server := newSeededApplicationServer()
	req := httptest.NewRequest(http.MethodGet, "/api/students/me/reviewable-companies", nil)
	req.Header.Set("X-User-Id", "acme-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}
