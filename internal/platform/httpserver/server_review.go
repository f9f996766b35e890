package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	reviewerrors "internhub/contexts/community/review-service/domain/errors"
	reviewhttp "internhub/contexts/community/review-service/transport/http"
	"internhub/internal/shared/scope"
)

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if scope.ParseRole(callerRole) != scope.RoleStudent {
		writeReviewError(w, http.StatusForbidden, "student_role_required", "only students write reviews")
		return
	}

	var req reviewhttp.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reviews.Handler.CreateReviewHandler(r.Context(), callerID, req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req reviewhttp.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReviewError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reviews.Handler.UpdateReviewHandler(r.Context(), callerID, r.PathValue("review_id"), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	callerID, callerRole := callerIdentity(r)
	if callerID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.reviews.Handler.DeleteReviewHandler(r.Context(), callerID, callerRole, r.PathValue("review_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMyReviews(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == "" {
		writeReviewError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.reviews.Handler.ListMyReviewsHandler(r.Context(), callerID)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCompanyReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reviews.Handler.ListCompanyReviewsHandler(r.Context(), r.PathValue("company_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompanyRating(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reviews.Handler.CompanyRatingHandler(r.Context(), r.PathValue("company_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewerrors.ErrReviewNotFound):
		writeReviewError(w, http.StatusNotFound, "review_not_found", err.Error())
	case errors.Is(err, reviewerrors.ErrCompanyNotFound):
		writeReviewError(w, http.StatusNotFound, "company_not_found", err.Error())
	case errors.Is(err, reviewerrors.ErrDuplicateReview):
		writeReviewError(w, http.StatusConflict, "duplicate_review", err.Error())
	case errors.Is(err, reviewerrors.ErrNotEligible):
		writeReviewError(w, http.StatusForbidden, "not_eligible", err.Error())
	case errors.Is(err, reviewerrors.ErrNotAuthor):
		writeReviewError(w, http.StatusForbidden, "not_author", err.Error())
	case errors.Is(err, reviewerrors.ErrInvalidRating),
		errors.Is(err, reviewerrors.ErrInvalidRequest):
		writeReviewError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeReviewError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeReviewError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
