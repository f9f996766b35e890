package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	applicationerrors "internhub/contexts/recruiting/application-service/domain/errors"
	applicationhttp "internhub/contexts/recruiting/application-service/transport/http"
	"internhub/internal/shared/scope"
)

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeApplicationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if scope.ParseRole(callerRole) != scope.RoleStudent {
		writeApplicationError(w, http.StatusForbidden, "student_role_required", "only students submit applications")
		return
	}

	var req applicationhttp.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeApplicationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.applications.Handler.ApplyHandler(r.Context(), callerID, req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeApplicationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.applications.Handler.ListApplicationsHandler(r.Context(), callerID, callerRole)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeApplicationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.applications.Handler.GetApplicationHandler(r.Context(), callerID, callerRole, r.PathValue("application_id"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeApplicationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req applicationhttp.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeApplicationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.applications.Handler.UpdateStatusHandler(r.Context(), callerID, callerRole, r.PathValue("application_id"), req)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApplicationCount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.applications.Handler.CountHandler(r.Context(), r.PathValue("internship_id"))
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListReviewableCompanies(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeApplicationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if scope.ParseRole(callerRole) != scope.RoleStudent {
		writeApplicationError(w, http.StatusForbidden, "student_role_required", "only students review companies")
		return
	}

	resp, err := s.applications.Handler.ListReviewableCompaniesHandler(r.Context(), callerID)
	if err != nil {
		writeApplicationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeApplicationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicationerrors.ErrApplicationNotFound):
		writeApplicationError(w, http.StatusNotFound, "application_not_found", err.Error())
	case errors.Is(err, applicationerrors.ErrInternshipNotFound):
		writeApplicationError(w, http.StatusNotFound, "internship_not_found", err.Error())
	case errors.Is(err, applicationerrors.ErrDuplicateApplication):
		writeApplicationError(w, http.StatusConflict, "duplicate_application", err.Error())
	case errors.Is(err, applicationerrors.ErrInvalidStatus),
		errors.Is(err, applicationerrors.ErrInvalidRequest):
		writeApplicationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, applicationerrors.ErrForbidden):
		writeApplicationError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeApplicationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeApplicationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, applicationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
