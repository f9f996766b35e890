package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DashboardStatsResponse struct {
	Students          int64   `json:"students"`
	Companies         int64   `json:"companies"`
	CompaniesPending  int64   `json:"companies_pending"`
	CompaniesApproved int64   `json:"companies_approved"`
	CompaniesRejected int64   `json:"companies_rejected"`
	Internships       int64   `json:"internships"`
	Applications      int64   `json:"applications"`
	ReviewCount       int64   `json:"review_count"`
	ReviewAverage     float64 `json:"review_average"`
}

type AdminUserDTO struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
}

type ListUsersResponse struct {
	Items []AdminUserDTO `json:"items"`
}

type AdminCompanyDTO struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ListCompaniesResponse struct {
	Items []AdminCompanyDTO `json:"items"`
}

type RecordAdminActionRequest struct {
	Action        string `json:"action"`
	TargetID      string `json:"target_id"`
	Justification string `json:"justification"`
	SourceIP      string `json:"source_ip"`
	CorrelationID string `json:"correlation_id"`
}

type RecordAdminActionResponse struct {
	AuditID    string `json:"audit_id"`
	OccurredAt string `json:"occurred_at"`
}

type AuditEntryDTO struct {
	AuditID       string `json:"audit_id"`
	ActorID       string `json:"actor_id"`
	Action        string `json:"action"`
	TargetID      string `json:"target_id"`
	Justification string `json:"justification"`
	OccurredAt    string `json:"occurred_at"`
}

type ListAuditEntriesResponse struct {
	Items []AuditEntryDTO `json:"items"`
}
