package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	reviewservice "internhub/contexts/community/review-service"
	companyservice "internhub/contexts/identity-access/company-service"
	applicationservice "internhub/contexts/recruiting/application-service"
	internshipservice "internhub/contexts/recruiting/internship-service"
	admindashboardservice "internhub/contexts/internal-ops/admin-dashboard-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "internhub/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	companies    companyservice.Module
	internships  internshipservice.Module
	applications applicationservice.Module
	reviews      reviewservice.Module
	admin        admindashboardservice.Module
}

func New(
	companies companyservice.Module,
	internships internshipservice.Module,
	applications applicationservice.Module,
	reviews reviewservice.Module,
	admin admindashboardservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		companies:    companies,
		internships:  internships,
		applications: applications,
		reviews:      reviews,
		admin:        admin,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/companies/register", s.handleRegisterCompany)
	s.mux.HandleFunc("POST /api/companies/{company_id}/verify", s.handleVerifyCompany)
	s.mux.HandleFunc("POST /api/auth/login-gate", s.handleLoginGate)
	s.mux.HandleFunc("GET /api/companies", s.handleListApprovedCompanies)
	s.mux.HandleFunc("GET /api/companies/me", s.handleCompanyProfile)
	s.mux.HandleFunc("GET /api/companies/me/status", s.handleCompanyStatus)

	s.mux.HandleFunc("POST /api/internships", s.handleCreateInternship)
	s.mux.HandleFunc("GET /api/internships", s.handleListInternships)
	s.mux.HandleFunc("GET /api/internships/mine", s.handleListMyInternships)
	s.mux.HandleFunc("GET /api/internships/{internship_id}", s.handleGetInternship)
	s.mux.HandleFunc("GET /api/internships/{internship_id}/applications/count", s.handleApplicationCount)

	s.mux.HandleFunc("POST /api/applications", s.handleApply)
	s.mux.HandleFunc("GET /api/applications", s.handleListApplications)
	s.mux.HandleFunc("GET /api/applications/{application_id}", s.handleGetApplication)
	s.mux.HandleFunc("PATCH /api/applications/{application_id}/status", s.handleUpdateApplicationStatus)
	s.mux.HandleFunc("GET /api/students/me/reviewable-companies", s.handleListReviewableCompanies)

	s.mux.HandleFunc("POST /api/reviews", s.handleCreateReview)
	s.mux.HandleFunc("PATCH /api/reviews/{review_id}", s.handleUpdateReview)
	s.mux.HandleFunc("DELETE /api/reviews/{review_id}", s.handleDeleteReview)
	s.mux.HandleFunc("GET /api/reviews/mine", s.handleListMyReviews)
	s.mux.HandleFunc("GET /api/companies/{company_id}/reviews", s.handleListCompanyReviews)
	s.mux.HandleFunc("GET /api/companies/{company_id}/rating", s.handleCompanyRating)

	s.mux.HandleFunc("GET /api/admin/stats", s.handleAdminStats)
	s.mux.HandleFunc("GET /api/admin/users", s.handleAdminListUsers)
	s.mux.HandleFunc("GET /api/admin/companies", s.handleAdminListCompanies)
	s.mux.HandleFunc("GET /api/admin/companies/pending", s.handleAdminListPendingCompanies)
	s.mux.HandleFunc("POST /api/admin/actions", s.handleRecordAdminAction)
	s.mux.HandleFunc("GET /api/admin/actions", s.handleListAdminActions)
}

// callerIdentity reads the identity the gateway forwards on every
// authenticated request.
func callerIdentity(r *http.Request) (string, string) {
	return strings.TrimSpace(r.Header.Get("X-User-Id")), strings.TrimSpace(r.Header.Get("X-User-Role"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
