package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"internhub/contexts/identity-access/company-service/domain/entities"
	domainerrors "internhub/contexts/identity-access/company-service/domain/errors"
	"internhub/contexts/identity-access/company-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	companies  map[string]entities.Company
	identities map[string]entities.Identity
}

func NewStore(seed []entities.Company) *Store {
	companies := make(map[string]entities.Company, len(seed))
	for _, item := range seed {
		companies[item.CompanyID] = item
	}
	return &Store{
		companies:  companies,
		identities: make(map[string]entities.Identity),
	}
}

func (s *Store) CreateCompanyWithIdentity(_ context.Context, identity entities.Identity, company entities.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(company.Email)
	for _, existing := range s.identities {
		if strings.ToLower(existing.Email) == email {
			return domainerrors.ErrEmailTaken
		}
	}
	for _, existing := range s.companies {
		if strings.ToLower(existing.Email) == email {
			return domainerrors.ErrEmailTaken
		}
	}

	s.identities[identity.IdentityID] = identity
	s.companies[company.CompanyID] = company
	return nil
}

func (s *Store) GetCompany(_ context.Context, companyID string) (entities.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.companies[strings.TrimSpace(companyID)]
	if !exists {
		return entities.Company{}, domainerrors.ErrCompanyNotFound
	}
	return item, nil
}

func (s *Store) GetCompanyByIdentity(_ context.Context, identityID string) (entities.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.companies {
		if item.IdentityID == strings.TrimSpace(identityID) {
			return item, nil
		}
	}
	return entities.Company{}, domainerrors.ErrCompanyNotFound
}

func (s *Store) SetStatus(_ context.Context, companyID string, status entities.CompanyStatus, now time.Time) (entities.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.companies[strings.TrimSpace(companyID)]
	if !exists {
		return entities.Company{}, domainerrors.ErrCompanyNotFound
	}
	item.Status = status
	item.UpdatedAt = now.UTC()
	s.companies[item.CompanyID] = item
	return item, nil
}

func (s *Store) ListByStatus(_ context.Context, status entities.CompanyStatus) ([]ports.CompanyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.CompanyProfile, 0, len(s.companies))
	for _, item := range s.companies {
		if item.Status != status {
			continue
		}
		profile := ports.CompanyProfile{Company: item}
		if identity, ok := s.identities[item.IdentityID]; ok {
			profile.Username = identity.Username
		}
		items = append(items, profile)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Company.CreatedAt.After(items[j].Company.CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
