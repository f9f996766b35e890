package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	internshiperrors "internhub/contexts/recruiting/internship-service/domain/errors"
	internshiphttp "internhub/contexts/recruiting/internship-service/transport/http"
)

func (s *Server) handleCreateInternship(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeInternshipError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req internshiphttp.CreateInternshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInternshipError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.internships.Handler.CreateInternshipHandler(r.Context(), callerID, callerRole, req)
	if err != nil {
		writeInternshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListInternships(w http.ResponseWriter, r *http.Request) {
	resp, err := s.internships.Handler.ListInternshipsHandler(r.Context())
	if err != nil {
		writeInternshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetInternship(w http.ResponseWriter, r *http.Request) {
	resp, err := s.internships.Handler.GetInternshipHandler(r.Context(), r.PathValue("internship_id"))
	if err != nil {
		writeInternshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMyInternships(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == "" {
		writeInternshipError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.internships.Handler.ListCompanyInternshipsHandler(r.Context(), callerID)
	if err != nil {
		writeInternshipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeInternshipDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, internshiperrors.ErrInternshipNotFound):
		writeInternshipError(w, http.StatusNotFound, "internship_not_found", err.Error())
	case errors.Is(err, internshiperrors.ErrCompanyNotFound):
		writeInternshipError(w, http.StatusNotFound, "company_not_found", err.Error())
	case errors.Is(err, internshiperrors.ErrCompanyRoleRequired):
		writeInternshipError(w, http.StatusForbidden, "company_role_required", err.Error())
	case errors.Is(err, internshiperrors.ErrInvalidRequest):
		writeInternshipError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeInternshipError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeInternshipError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, internshiphttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
