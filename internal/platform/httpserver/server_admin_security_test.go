package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminStatsRequiresAdminRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "STUDENT")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminStatsForAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "ADMIN")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminUserListRequiresAdminRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?role=STUDENT", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "COMPANY")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRecordAdminActionRequiresIdempotencyKey(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"action":"company.verify","target_id":"c-1","justification":"documents checked"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/actions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "ADMIN")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRecordAdminActionRetrySafe(t *testing.T) {
	server := newTestServer()
	body := `{"action":"company.verify","target_id":"c-1","justification":"documents checked"}`

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/actions", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "admin-1")
		req.Header.Set("X-User-Role", "ADMIN")
		req.Header.Set("Idempotency-Key", "verify-c-1")
		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		return rr
	}

	first := send()
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", first.Code, first.Body.String())
	}
	second := send()
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 on retry, got %d body=%s", second.Code, second.Body.String())
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("retry must return the original entry:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}
