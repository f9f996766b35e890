package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterCompanyRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type RegisterCompanyResponse struct {
	Message  string      `json:"message"`
	Identity IdentityDTO `json:"identity"`
	Company  CompanyDTO  `json:"company"`
}

type VerifyCompanyRequest struct {
	Status string `json:"status"`
}

type VerifyCompanyResponse struct {
	Company CompanyDTO `json:"company"`
}

type LoginGateRequest struct {
	IdentityID string `json:"identity_id"`
	Role       string `json:"role"`
}

type CompanyStatusResponse struct {
	Status string `json:"status"`
}

type CompanyDTO struct {
	CompanyID   string `json:"company_id"`
	IdentityID  string `json:"identity_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Username    string `json:"username,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type IdentityDTO struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type ListCompaniesResponse struct {
	Items []CompanyDTO `json:"items"`
}
