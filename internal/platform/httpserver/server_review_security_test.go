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
	reviewentities "internhub/contexts/community/review-service/domain/entities"
	reviewports "internhub/contexts/community/review-service/ports"
	companyservice "internhub/contexts/identity-access/company-service"
	admindashboardservice "internhub/contexts/internal-ops/admin-dashboard-service"
	adminmemory "internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	applicationservice "internhub/contexts/recruiting/application-service"
	applicationmemory "internhub/contexts/recruiting/application-service/adapters/memory"
	internshipservice "internhub/contexts/recruiting/internship-service"
	internshipmemory "internhub/contexts/recruiting/internship-service/adapters/memory"
)

func newSeededReviewServer() *Server {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	reviews := reviewservice.NewInMemoryModule(reviewmemory.Seed{
		Reviews: []reviewentities.Review{
			{ReviewID: "r-1", AuthorID: "s-1", CompanyID: "c-1", Rating: 4, Comment: "great team", CreatedAt: now, UpdatedAt: now},
		},
		Companies: []reviewports.CompanyRef{
			{CompanyID: "c-1", Name: "Acme"},
		},
		Authors: []reviewports.AuthorRef{
			{AuthorID: "s-1", Username: "alice"},
		},
		Accepted: []reviewmemory.AcceptedPlacement{
			{StudentID: "s-1", CompanyID: "c-1"},
		},
	}, slog.Default())

	return New(
		companyservice.NewInMemoryModule(nil, slog.Default()),
		internshipservice.NewInMemoryModule(internshipmemory.Seed{}, slog.Default()),
		applicationservice.NewInMemoryModule(applicationmemory.Seed{}, slog.Default()),
		reviews,
		admindashboardservice.NewInMemoryModule(adminmemory.Seed{}, slog.Default()),
		slog.Default(),
		":0",
	)
}

func TestCreateReviewRequiresStudentRole(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader([]byte(`{"company_id":"c-1","rating":4}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "acme-identity")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateReviewWithoutPlacementForbidden(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader([]byte(`{"company_id":"c-1","rating":4}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "s-2")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for ineligible student, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateDuplicateReviewConflicts(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader([]byte(`{"company_id":"c-1","rating":5}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "s-1")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateReviewByNonAuthorForbidden(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodPatch, "/api/reviews/r-1", bytes.NewReader([]byte(`{"rating":1}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "s-2")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteReviewRequiresUserHeader(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/r-1", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteReviewByAdminAllowed(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/r-1", nil)
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "ADMIN")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin delete, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"review_id":"r-1"`)) {
		t.Fatalf("expected the deleted review summary, got %s", rr.Body.String())
	}
}

func TestDeleteReviewByNonAuthorForbidden(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/r-1", nil)
	req.Header.Set("X-User-Id", "s-2")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCompanyRatingIsPublic(t *testing.T) {
	server := newSeededReviewServer()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/c-1/rating", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"count":1`)) {
		t.Fatalf("expected one review in summary, got %s", rr.Body.String())
	}
}
