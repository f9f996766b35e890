package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"internhub/contexts/recruiting/internship-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/internship-service/domain/errors"
	"internhub/contexts/recruiting/internship-service/ports"

	"github.com/google/uuid"
)

// CompanyProjection seeds the company rows this context normally reads from
// the shared companies table.
type CompanyProjection struct {
	Ref        ports.CompanyRef
	IdentityID string
}

type Seed struct {
	Internships       []entities.Internship
	Companies         []CompanyProjection
	ApplicationCounts map[string]int64
}

type Store struct {
	mu sync.RWMutex

	internships map[string]entities.Internship
	companies   map[string]CompanyProjection
	counts      map[string]int64
}

func NewStore(seed Seed) *Store {
	internships := make(map[string]entities.Internship, len(seed.Internships))
	for _, item := range seed.Internships {
		internships[item.InternshipID] = item
	}
	companies := make(map[string]CompanyProjection, len(seed.Companies))
	for _, item := range seed.Companies {
		companies[item.Ref.CompanyID] = item
	}
	counts := make(map[string]int64, len(seed.ApplicationCounts))
	for id, count := range seed.ApplicationCounts {
		counts[id] = count
	}
	return &Store{
		internships: internships,
		companies:   companies,
		counts:      counts,
	}
}

func (s *Store) CreateInternship(_ context.Context, internship entities.Internship) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.internships[internship.InternshipID] = internship
	return nil
}

func (s *Store) GetInternship(_ context.Context, internshipID string) (entities.Internship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.internships[strings.TrimSpace(internshipID)]
	if !exists {
		return entities.Internship{}, domainerrors.ErrInternshipNotFound
	}
	return item, nil
}

func (s *Store) ListAll(_ context.Context) ([]ports.InternshipListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.InternshipListing, 0, len(s.internships))
	for _, item := range s.internships {
		items = append(items, s.listing(item))
	}
	sortListings(items)
	return items, nil
}

func (s *Store) ListByCompany(_ context.Context, companyID string) ([]ports.InternshipListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.InternshipListing, 0)
	for _, item := range s.internships {
		if item.CompanyID != strings.TrimSpace(companyID) {
			continue
		}
		items = append(items, s.listing(item))
	}
	sortListings(items)
	return items, nil
}

func (s *Store) CompanyByIdentity(_ context.Context, identityID string) (ports.CompanyRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.companies {
		if item.IdentityID == strings.TrimSpace(identityID) {
			return item.Ref, true, nil
		}
	}
	return ports.CompanyRef{}, false, nil
}

func (s *Store) listing(item entities.Internship) ports.InternshipListing {
	listing := ports.InternshipListing{
		Internship:       item,
		ApplicationCount: s.counts[item.InternshipID],
	}
	if company, ok := s.companies[item.CompanyID]; ok {
		listing.Company = company.Ref
	}
	return listing
}

func sortListings(items []ports.InternshipListing) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Internship.CreatedAt.After(items[j].Internship.CreatedAt)
	})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
