package entities

import (
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus accepts the known status values in any case.
// There is no transition table: any known status may follow any other.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case ApplicationStatusPending:
		return ApplicationStatusPending, true
	case ApplicationStatusAccepted:
		return ApplicationStatusAccepted, true
	case ApplicationStatusRejected:
		return ApplicationStatusRejected, true
	default:
		return "", false
	}
}

// Application links a student to an internship. At most one application may
// exist per (student, internship) pair; the pair is unique in storage.
type Application struct {
	ApplicationID string
	StudentID     string
	InternshipID  string
	Status        ApplicationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Application) ValidateCreate() bool {
	return strings.TrimSpace(a.StudentID) != "" && strings.TrimSpace(a.InternshipID) != ""
}
