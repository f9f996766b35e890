package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateInternshipRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type InternshipDTO struct {
	InternshipID     string `json:"internship_id"`
	CompanyID        string `json:"company_id"`
	Title            string `json:"title"`
	Location         string `json:"location,omitempty"`
	Description      string `json:"description,omitempty"`
	CompanyName      string `json:"company_name,omitempty"`
	CompanyWebsite   string `json:"company_website,omitempty"`
	ApplicationCount int64  `json:"application_count"`
	CreatedAt        string `json:"created_at"`
}

type CreateInternshipResponse struct {
	Internship InternshipDTO `json:"internship"`
}

type GetInternshipResponse struct {
	Internship InternshipDTO `json:"internship"`
}

type ListInternshipsResponse struct {
	Items []InternshipDTO `json:"items"`
}
