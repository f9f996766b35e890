package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	reviewservice "internhub/contexts/community/review-service"
	reviewmemory "internhub/contexts/community/review-service/adapters/memory"
	companyservice "internhub/contexts/identity-access/company-service"
	admindashboardservice "internhub/contexts/internal-ops/admin-dashboard-service"
	adminmemory "internhub/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	applicationservice "internhub/contexts/recruiting/application-service"
	applicationmemory "internhub/contexts/recruiting/application-service/adapters/memory"
	internshipservice "internhub/contexts/recruiting/internship-service"
	internshipmemory "internhub/contexts/recruiting/internship-service/adapters/memory"
)

func newTestServer() *Server {
	return New(
		companyservice.NewInMemoryModule(nil, slog.Default()),
		internshipservice.NewInMemoryModule(internshipmemory.Seed{}, slog.Default()),
		applicationservice.NewInMemoryModule(applicationmemory.Seed{}, slog.Default()),
		reviewservice.NewInMemoryModule(reviewmemory.Seed{}, slog.Default()),
		admindashboardservice.NewInMemoryModule(adminmemory.Seed{}, slog.Default()),
		slog.Default(),
		":0",
	)
}

func TestRegisterCompanyRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/companies/register", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegisterCompanyReturnsPendingProfile(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"username":"acme","email":"hr@acme.test","name":"Acme Corp"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/companies/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"status":"PENDING"`)) {
		t.Fatalf("expected PENDING company in response, got %s", rr.Body.String())
	}
}

func TestVerifyCompanyRequiresAdminRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/companies/c-1/verify", bytes.NewReader([]byte(`{"status":"APPROVED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCompanyProfileRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/me", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPendingCompanyListRequiresAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/companies/pending", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoginGateBlocksPendingCompany(t *testing.T) {
	server := newTestServer()

	registerBody := []byte(`{"username":"acme","email":"hr@acme.test","name":"Acme Corp"}`)
	registerReq := httptest.NewRequest(http.MethodPost, "/api/companies/register", bytes.NewReader(registerBody))
	registerReq.Header.Set("Content-Type", "application/json")
	registerRR := httptest.NewRecorder()
	server.mux.ServeHTTP(registerRR, registerReq)
	if registerRR.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", registerRR.Code, registerRR.Body.String())
	}

	var registered struct {
		Identity struct {
			IdentityID string `json:"identity_id"`
		} `json:"identity"`
	}
	if err := json.Unmarshal(registerRR.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	gateBody := []byte(`{"identity_id":"` + registered.Identity.IdentityID + `","role":"COMPANY"}`)
	gateReq := httptest.NewRequest(http.MethodPost, "/api/auth/login-gate", bytes.NewReader(gateBody))
	gateReq.Header.Set("Content-Type", "application/json")
	gateRR := httptest.NewRecorder()
	server.mux.ServeHTTP(gateRR, gateReq)

	if gateRR.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for pending company, got %d body=%s", gateRR.Code, gateRR.Body.String())
	}
}
