package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "internhub/contexts/internal-ops/admin-dashboard-service/domain/errors"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"
)

// Seed carries projections of the tables the dashboard aggregates over.
type Seed struct {
	Users        []ports.UserRecord
	Companies    []ports.CompanyRecord
	Internships  int64
	Applications int64
	Ratings      []int
}

type Store struct {
	mu sync.Mutex

	users        []ports.UserRecord
	companies    []ports.CompanyRecord
	internships  int64
	applications int64
	ratings      []int

	entries     []ports.AuditEntry
	idempotency map[string]ports.IdempotencyRecord
}

func NewStore(seed Seed) *Store {
	return &Store{
		users:        append([]ports.UserRecord(nil), seed.Users...),
		companies:    append([]ports.CompanyRecord(nil), seed.Companies...),
		internships:  seed.Internships,
		applications: seed.Applications,
		ratings:      append([]int(nil), seed.Ratings...),
		entries:      make([]ports.AuditEntry, 0, 128),
		idempotency:  map[string]ports.IdempotencyRecord{},
	}
}

func (s *Store) CountIdentitiesByRole(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int64{}
	for _, user := range s.users {
		counts[user.Role]++
	}
	return counts, nil
}

func (s *Store) CountCompaniesByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int64{}
	for _, company := range s.companies {
		counts[company.Status]++
	}
	return counts, nil
}

func (s *Store) CountInternships(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.internships, nil
}

func (s *Store) CountApplications(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applications, nil
}

func (s *Store) ReviewStats(_ context.Context) (int64, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ratings) == 0 {
		return 0, 0, nil
	}
	var sum int
	for _, rating := range s.ratings {
		sum += rating
	}
	return int64(len(s.ratings)), float64(sum) / float64(len(s.ratings)), nil
}

func (s *Store) ListUsers(_ context.Context, opts ports.ListOptions) ([]ports.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]ports.UserRecord, 0, len(s.users))
	for _, user := range s.users {
		if opts.Filter != "" && user.Role != opts.Filter {
			continue
		}
		items = append(items, user)
	}
	sort.SliceStable(items, func(i, j int) bool {
		less := userLess(items[i], items[j], opts.SortBy)
		if opts.Ascending {
			return less
		}
		return !less && !userEqual(items[i], items[j], opts.SortBy)
	})
	return items, nil
}

func (s *Store) ListCompanies(_ context.Context, opts ports.ListOptions) ([]ports.CompanyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]ports.CompanyRecord, 0, len(s.companies))
	for _, company := range s.companies {
		if opts.Filter != "" && company.Status != opts.Filter {
			continue
		}
		items = append(items, company)
	}
	sort.SliceStable(items, func(i, j int) bool {
		less := companyLess(items[i], items[j], opts.SortBy)
		if opts.Ascending {
			return less
		}
		return !less && !companyEqual(items[i], items[j], opts.SortBy)
	})
	return items, nil
}

func userLess(a, b ports.UserRecord, sortBy string) bool {
	switch sortBy {
	case "username":
		return strings.ToLower(a.Username) < strings.ToLower(b.Username)
	case "email":
		return a.Email < b.Email
	case "role":
		return a.Role < b.Role
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func userEqual(a, b ports.UserRecord, sortBy string) bool {
	switch sortBy {
	case "username":
		return strings.EqualFold(a.Username, b.Username)
	case "email":
		return a.Email == b.Email
	case "role":
		return a.Role == b.Role
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}

func companyLess(a, b ports.CompanyRecord, sortBy string) bool {
	switch sortBy {
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case "email":
		return a.Email < b.Email
	case "status":
		return a.Status < b.Status
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func companyEqual(a, b ports.CompanyRecord, sortBy string) bool {
	switch sortBy {
	case "name":
		return strings.EqualFold(a.Name, b.Name)
	case "email":
		return a.Email == b.Email
	case "status":
		return a.Status == b.Status
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}

func (s *Store) AppendAuditEntry(_ context.Context, row ports.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, row)
	return nil
}

func (s *Store) ListRecentAuditEntries(_ context.Context, limit int) ([]ports.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}
	out := make([]ports.AuditEntry, 0, limit)
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (*ports.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.idempotency[key]
	if !ok {
		return nil, nil
	}
	if now.After(row.ExpiresAt) {
		delete(s.idempotency, key)
		return nil, nil
	}
	clone := row
	clone.ResponseBody = slices.Clone(row.ResponseBody)
	return &clone, nil
}

func (s *Store) Reserve(_ context.Context, key, requestHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row, ok := s.idempotency[key]; ok && time.Now().UTC().Before(row.ExpiresAt) {
		if row.RequestHash != requestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[key] = ports.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (s *Store) Complete(_ context.Context, key string, responseBody []byte, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.idempotency[key]
	if !ok {
		return nil
	}
	row.ResponseBody = slices.Clone(responseBody)
	if at.After(row.ExpiresAt) {
		row.ExpiresAt = at.Add(7 * 24 * time.Hour)
	}
	s.idempotency[key] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
