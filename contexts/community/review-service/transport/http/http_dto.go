package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateReviewRequest struct {
	CompanyID string `json:"company_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

type ReviewDTO struct {
	ReviewID       string `json:"review_id"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username,omitempty"`
	CompanyID      string `json:"company_id"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type ReviewResponse struct {
	Review ReviewDTO `json:"review"`
}

type ListReviewsResponse struct {
	Items []ReviewDTO `json:"items"`
}

type RatingSummaryDTO struct {
	CompanyID string  `json:"company_id"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

type DeletedReviewDTO struct {
	ReviewID string `json:"review_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

type DeleteReviewResponse struct {
	Deleted DeletedReviewDTO `json:"deleted"`
	Summary RatingSummaryDTO `json:"summary"`
}

type CompanyRatingResponse struct {
	Summary RatingSummaryDTO `json:"summary"`
}
