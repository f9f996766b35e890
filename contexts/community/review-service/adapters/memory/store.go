package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"internhub/contexts/community/review-service/domain/entities"
	domainerrors "internhub/contexts/community/review-service/domain/errors"
	"internhub/contexts/community/review-service/ports"

	"github.com/google/uuid"
)

// AcceptedPlacement seeds the eligibility facts this context normally derives
// from the applications and internships tables.
type AcceptedPlacement struct {
	StudentID string
	CompanyID string
}

type Seed struct {
	Reviews   []entities.Review
	Companies []ports.CompanyRef
	Authors   []ports.AuthorRef
	Accepted  []AcceptedPlacement
}

type Store struct {
	mu sync.RWMutex

	reviews   map[string]entities.Review
	companies map[string]ports.CompanyRef
	authors   map[string]ports.AuthorRef
	accepted  []AcceptedPlacement
}

func NewStore(seed Seed) *Store {
	reviews := make(map[string]entities.Review, len(seed.Reviews))
	for _, item := range seed.Reviews {
		reviews[item.ReviewID] = item
	}
	companies := make(map[string]ports.CompanyRef, len(seed.Companies))
	for _, item := range seed.Companies {
		companies[item.CompanyID] = item
	}
	authors := make(map[string]ports.AuthorRef, len(seed.Authors))
	for _, item := range seed.Authors {
		authors[item.AuthorID] = item
	}
	return &Store{
		reviews:   reviews,
		companies: companies,
		authors:   authors,
		accepted:  append([]AcceptedPlacement(nil), seed.Accepted...),
	}
}

func (s *Store) CreateReview(_ context.Context, review entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.AuthorID == review.AuthorID && existing.CompanyID == review.CompanyID {
			return domainerrors.ErrDuplicateReview
		}
	}
	s.reviews[review.ReviewID] = review
	return nil
}

func (s *Store) GetReview(_ context.Context, reviewID string) (entities.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.reviews[strings.TrimSpace(reviewID)]
	if !exists {
		return entities.Review{}, domainerrors.ErrReviewNotFound
	}
	return item, nil
}

func (s *Store) SaveReview(_ context.Context, review entities.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[review.ReviewID]; !exists {
		return domainerrors.ErrReviewNotFound
	}
	s.reviews[review.ReviewID] = review
	return nil
}

func (s *Store) DeleteReview(_ context.Context, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[reviewID]; !exists {
		return domainerrors.ErrReviewNotFound
	}
	delete(s.reviews, reviewID)
	return nil
}

func (s *Store) ListByCompany(_ context.Context, companyID string) ([]ports.ReviewDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.ReviewDetail, 0)
	for _, item := range s.reviews {
		if item.CompanyID != companyID {
			continue
		}
		detail := ports.ReviewDetail{Review: item}
		if author, ok := s.authors[item.AuthorID]; ok {
			detail.Author = author
		} else {
			detail.Author = ports.AuthorRef{AuthorID: item.AuthorID}
		}
		items = append(items, detail)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Review.CreatedAt.After(items[j].Review.CreatedAt)
	})
	return items, nil
}

func (s *Store) ListByAuthor(_ context.Context, authorID string) ([]ports.ReviewDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.ReviewDetail, 0)
	for _, item := range s.reviews {
		if item.AuthorID != authorID {
			continue
		}
		detail := ports.ReviewDetail{Review: item}
		if company, ok := s.companies[item.CompanyID]; ok {
			detail.Company = company
		} else {
			detail.Company = ports.CompanyRef{CompanyID: item.CompanyID}
		}
		items = append(items, detail)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Review.CreatedAt.After(items[j].Review.CreatedAt)
	})
	return items, nil
}

func (s *Store) Aggregate(_ context.Context, companyID string) (ports.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int
	var count int64
	for _, item := range s.reviews {
		if item.CompanyID != companyID {
			continue
		}
		sum += item.Rating
		count++
	}
	if count == 0 {
		return ports.RatingSummary{}, nil
	}
	return ports.RatingSummary{
		Average: float64(sum) / float64(count),
		Count:   count,
	}, nil
}

func (s *Store) CompanyByID(_ context.Context, companyID string) (ports.CompanyRef, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.companies[strings.TrimSpace(companyID)]
	return item, exists, nil
}

func (s *Store) HasAcceptedApplication(_ context.Context, studentID, companyID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, pair := range s.accepted {
		if pair.StudentID == studentID && pair.CompanyID == companyID {
			return true, nil
		}
	}
	return false, nil
}

// GrantAcceptedPlacement records an eligibility fact after construction.
func (s *Store) GrantAcceptedPlacement(studentID, companyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accepted = append(s.accepted, AcceptedPlacement{StudentID: studentID, CompanyID: companyID})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
