package entities

import (
	"strings"
	"time"
)

const (
	RatingMin = 1
	RatingMax = 5
)

func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// Review is one student's rating of one company. A student may hold at most
// one review per company; the (author, company) pair is unique in storage.
type Review struct {
	ReviewID  string
	AuthorID  string
	CompanyID string
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Review) ValidateCreate() bool {
	return strings.TrimSpace(r.AuthorID) != "" &&
		strings.TrimSpace(r.CompanyID) != "" &&
		ValidRating(r.Rating)
}
