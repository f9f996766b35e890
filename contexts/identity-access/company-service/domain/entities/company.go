package entities

import (
	"strings"
	"time"
)

type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "PENDING"
	CompanyStatusApproved CompanyStatus = "APPROVED"
	CompanyStatusRejected CompanyStatus = "REJECTED"
)

// ParseCompanyStatus accepts the known status values in any case.
func ParseCompanyStatus(raw string) (CompanyStatus, bool) {
	switch CompanyStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case CompanyStatusPending:
		return CompanyStatusPending, true
	case CompanyStatusApproved:
		return CompanyStatusApproved, true
	case CompanyStatusRejected:
		return CompanyStatusRejected, true
	default:
		return "", false
	}
}

// VerifyTarget reports whether the status is a valid target for the admin
// verify operation. PENDING is a creation-only state.
func (s CompanyStatus) VerifyTarget() bool {
	return s == CompanyStatusApproved || s == CompanyStatusRejected
}

// Company is a company profile linked one-to-one to an identity. Created
// PENDING at registration; only an admin verify moves it to APPROVED or
// REJECTED.
type Company struct {
	CompanyID   string
	IdentityID  string
	Name        string
	Email       string
	Website     string
	Description string
	Status      CompanyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Company) ValidateCreate() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.IdentityID) != ""
}

// Identity is the account record the external trust boundary authenticates.
// The company service only ever creates COMPANY-role identities, as a side
// effect of registration.
type Identity struct {
	IdentityID string
	Username   string
	Email      string
	Role       string
	CreatedAt  time.Time
}
