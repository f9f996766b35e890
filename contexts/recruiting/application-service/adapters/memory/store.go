package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"

	"github.com/google/uuid"
)

// CompanyProjection seeds the company rows this context normally joins from
// the shared companies table, plus the identity link used for ownership
// resolution.
type CompanyProjection struct {
	Ref        ports.CompanyRef
	IdentityID string
}

type Seed struct {
	Applications []entities.Application
	Internships  []ports.InternshipRef
	Companies    []CompanyProjection
	Students     []ports.StudentRef
}

type Store struct {
	mu sync.RWMutex

	applications map[string]entities.Application
	internships  map[string]ports.InternshipRef
	companies    map[string]CompanyProjection
	students     map[string]ports.StudentRef
}

func NewStore(seed Seed) *Store {
	applications := make(map[string]entities.Application, len(seed.Applications))
	for _, item := range seed.Applications {
		applications[item.ApplicationID] = item
	}
	internships := make(map[string]ports.InternshipRef, len(seed.Internships))
	for _, item := range seed.Internships {
		internships[item.InternshipID] = item
	}
	companies := make(map[string]CompanyProjection, len(seed.Companies))
	for _, item := range seed.Companies {
		companies[item.Ref.CompanyID] = item
	}
	students := make(map[string]ports.StudentRef, len(seed.Students))
	for _, item := range seed.Students {
		students[item.StudentID] = item
	}
	return &Store{
		applications: applications,
		internships:  internships,
		companies:    companies,
		students:     students,
	}
}

func (s *Store) CreateApplication(_ context.Context, application entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.StudentID == application.StudentID && existing.InternshipID == application.InternshipID {
			return domainerrors.ErrDuplicateApplication
		}
	}
	s.applications[application.ApplicationID] = application
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) ListDetailed(_ context.Context, filter ports.ApplicationFilter) ([]ports.ApplicationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.ApplicationDetail, 0)
	for _, item := range s.applications {
		detail := s.detail(item)
		if !matches(detail, filter) {
			continue
		}
		items = append(items, detail)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Application.CreatedAt.After(items[j].Application.CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateStatus(_ context.Context, applicationID string, status entities.ApplicationStatus, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return domainerrors.ErrApplicationNotFound
	}
	item.Status = status
	item.UpdatedAt = now
	s.applications[item.ApplicationID] = item
	return nil
}

func (s *Store) CountByInternship(_ context.Context, internshipID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, item := range s.applications {
		if item.InternshipID == strings.TrimSpace(internshipID) {
			count++
		}
	}
	return count, nil
}

func (s *Store) InternshipByID(_ context.Context, internshipID string) (ports.InternshipRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.internships[strings.TrimSpace(internshipID)]
	return item, exists, nil
}

func (s *Store) CompanyIDForIdentity(_ context.Context, identityID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.companies {
		if item.IdentityID == strings.TrimSpace(identityID) {
			return item.Ref.CompanyID, true, nil
		}
	}
	return "", false, nil
}

func (s *Store) detail(item entities.Application) ports.ApplicationDetail {
	detail := ports.ApplicationDetail{Application: item}
	if student, ok := s.students[item.StudentID]; ok {
		detail.Student = student
	} else {
		detail.Student = ports.StudentRef{StudentID: item.StudentID}
	}
	if internship, ok := s.internships[item.InternshipID]; ok {
		detail.Internship = internship
		if company, ok := s.companies[internship.CompanyID]; ok {
			detail.Company = company.Ref
		}
	}
	return detail
}

func matches(detail ports.ApplicationDetail, filter ports.ApplicationFilter) bool {
	if filter.ApplicationID != "" && detail.Application.ApplicationID != filter.ApplicationID {
		return false
	}
	if filter.StudentID != "" && detail.Application.StudentID != filter.StudentID {
		return false
	}
	if filter.CompanyID != "" && detail.Internship.CompanyID != filter.CompanyID {
		return false
	}
	if filter.Status != "" && detail.Application.Status != filter.Status {
		return false
	}
	return true
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
