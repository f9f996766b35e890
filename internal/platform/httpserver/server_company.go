package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	companyerrors "internhub/contexts/identity-access/company-service/domain/errors"
	companyhttp "internhub/contexts/identity-access/company-service/transport/http"
	"internhub/internal/shared/scope"
)

func (s *Server) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req companyhttp.RegisterCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCompanyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.companies.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleVerifyCompany(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)

	var req companyhttp.VerifyCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCompanyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.companies.Handler.VerifyHandler(r.Context(), callerRole, r.PathValue("company_id"), req)
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoginGate(w http.ResponseWriter, r *http.Request) {
	var req companyhttp.LoginGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCompanyError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if req.IdentityID == "" {
		req.IdentityID, req.Role = callerIdentity(r)
	}

	if err := s.companies.Handler.LoginGateHandler(r.Context(), req); err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListApprovedCompanies(w http.ResponseWriter, r *http.Request) {
	resp, err := s.companies.Handler.ListApprovedHandler(r.Context())
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompanyProfile(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == "" {
		writeCompanyError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.companies.Handler.ProfileHandler(r.Context(), callerID)
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompanyStatus(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == "" {
		writeCompanyError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.companies.Handler.StatusHandler(r.Context(), callerID)
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminListPendingCompanies(w http.ResponseWriter, r *http.Request) {
	_, callerRole := callerIdentity(r)
	if scope.ParseRole(callerRole) != scope.RoleAdmin {
		writeCompanyError(w, http.StatusForbidden, "admin_only", "admin role required")
		return
	}

	resp, err := s.companies.Handler.ListPendingHandler(r.Context())
	if err != nil {
		writeCompanyDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCompanyDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, companyerrors.ErrCompanyNotFound):
		writeCompanyError(w, http.StatusNotFound, "company_not_found", err.Error())
	case errors.Is(err, companyerrors.ErrEmailTaken):
		writeCompanyError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, companyerrors.ErrInvalidTargetStatus),
		errors.Is(err, companyerrors.ErrInvalidRequest):
		writeCompanyError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, companyerrors.ErrAdminOnly):
		writeCompanyError(w, http.StatusForbidden, "admin_only", err.Error())
	case errors.Is(err, companyerrors.ErrProfileMissing):
		writeCompanyError(w, http.StatusUnauthorized, "company_profile_missing", err.Error())
	case errors.Is(err, companyerrors.ErrPendingVerification):
		writeCompanyError(w, http.StatusUnauthorized, "company_pending_verification", err.Error())
	case errors.Is(err, companyerrors.ErrRejected):
		writeCompanyError(w, http.StatusUnauthorized, "company_rejected", err.Error())
	default:
		writeCompanyError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCompanyError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, companyhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
