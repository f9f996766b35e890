package entities

import (
	"strings"
	"time"
)

// Internship is a posting owned by exactly one company. The owning company
// id is the root of every ownership-chain resolution in the recruiting
// context.
type Internship struct {
	InternshipID string
	CompanyID    string
	Title        string
	Location     string
	Description  string
	CreatedAt    time.Time
}

func (i Internship) ValidateCreate() bool {
	return strings.TrimSpace(i.Title) != "" && strings.TrimSpace(i.CompanyID) != ""
}
