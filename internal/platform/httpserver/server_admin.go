package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	adminerrors "internhub/contexts/internal-ops/admin-dashboard-service/domain/errors"
	adminhttp "internhub/contexts/internal-ops/admin-dashboard-service/transport/http"
)

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)
	resp, err := s.admin.Handler.DashboardStatsHandler(r.Context(), callerRole)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)
	query := r.URL.Query()

	resp, err := s.admin.Handler.ListUsersHandler(
		r.Context(),
		callerRole,
		query.Get("role"),
		query.Get("sort_by"),
		query.Get("order"),
	)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminListCompanies(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)
	query := r.URL.Query()

	resp, err := s.admin.Handler.ListCompaniesHandler(
		r.Context(),
		callerRole,
		query.Get("status"),
		query.Get("sort_by"),
		query.Get("order"),
	)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordAdminAction(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeAdminError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req adminhttp.RecordAdminActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAdminError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if req.SourceIP == "" {
		req.SourceIP = resolveClientIP(r)
	}

	resp, err := s.admin.Handler.RecordAdminActionHandler(
		r.Context(),
		callerID,
		callerRole,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAdminActions(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeAdminError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.admin.Handler.ListAuditEntriesHandler(r.Context(), callerRole, limit)
	if err != nil {
		writeAdminDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAdminDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminerrors.ErrAdminOnly):
		writeAdminError(w, http.StatusForbidden, "admin_only", err.Error())
	case errors.Is(err, adminerrors.ErrInvalidInput):
		writeAdminError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, adminerrors.ErrIdempotencyRequired):
		writeAdminError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, adminerrors.ErrIdempotencyConflict):
		writeAdminError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	default:
		writeAdminError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAdminError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, adminhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
