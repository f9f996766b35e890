package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ApplyRequest struct {
	InternshipID string `json:"internship_id"`
}

type ApplicationDTO struct {
	ApplicationID   string `json:"application_id"`
	StudentID       string `json:"student_id"`
	StudentUsername string `json:"student_username,omitempty"`
	StudentEmail    string `json:"student_email,omitempty"`
	InternshipID    string `json:"internship_id"`
	InternshipTitle string `json:"internship_title,omitempty"`
	CompanyID       string `json:"company_id,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ApplyResponse struct {
	Application ApplicationDTO `json:"application"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type UpdateApplicationStatusResponse struct {
	Application ApplicationDTO `json:"application"`
}

type GetApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
}

type ApplicationCountResponse struct {
	InternshipID string `json:"internship_id"`
	Count        int64  `json:"count"`
}

type ReviewableCompanyDTO struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

type ListReviewableCompaniesResponse struct {
	Items []ReviewableCompanyDTO `json:"items"`
}
