package application

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"internhub/contexts/community/review-service/domain/entities"
	domainerrors "internhub/contexts/community/review-service/domain/errors"
	"internhub/contexts/community/review-service/ports"
	"internhub/internal/shared/scope"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type CreateCommand struct {
	AuthorID  string
	CompanyID string
	Rating    int
	Comment   string
}

// Create stores a review after the eligibility check: the author needs at
// least one accepted application at an internship owned by the company. Any
// accepted application qualifies, however old.
func (s Service) Create(ctx context.Context, cmd CreateCommand) (entities.Review, error) {
	companyID := strings.TrimSpace(cmd.CompanyID)
	authorID := strings.TrimSpace(cmd.AuthorID)

	// Resolve the company before validating the payload so an unknown
	// target reads as NotFound regardless of the rating value.
	_, found, err := s.Repo.CompanyByID(ctx, companyID)
	if err != nil {
		return entities.Review{}, err
	}
	if !found {
		return entities.Review{}, domainerrors.ErrCompanyNotFound
	}
	if !entities.ValidRating(cmd.Rating) {
		return entities.Review{}, domainerrors.ErrInvalidRating
	}

	eligible, err := s.Repo.HasAcceptedApplication(ctx, authorID, companyID)
	if err != nil {
		return entities.Review{}, err
	}
	if !eligible {
		return entities.Review{}, domainerrors.ErrNotEligible
	}

	reviewID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Review{}, err
	}
	now := s.Clock.Now().UTC()
	review := entities.Review{
		ReviewID:  reviewID,
		AuthorID:  authorID,
		CompanyID: companyID,
		Rating:    cmd.Rating,
		Comment:   strings.TrimSpace(cmd.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !review.ValidateCreate() {
		return entities.Review{}, domainerrors.ErrInvalidRequest
	}
	if err := s.Repo.CreateReview(ctx, review); err != nil {
		return entities.Review{}, err
	}

	s.logger().Info("review created",
		"event", "review_created",
		"module", "community/review-service",
		"layer", "application",
		"review_id", review.ReviewID,
		"company_id", review.CompanyID,
		"rating", review.Rating,
	)
	return review, nil
}

type UpdateCommand struct {
	ReviewID string
	AuthorID string
	Rating   int
	Comment  *string
}

// Update modifies the author's own review. The rating is required and
// re-validated; a nil comment keeps the current one, so a rating-only edit
// does not clear it.
func (s Service) Update(ctx context.Context, cmd UpdateCommand) (entities.Review, error) {
	review, err := s.Repo.GetReview(ctx, strings.TrimSpace(cmd.ReviewID))
	if err != nil {
		return entities.Review{}, err
	}
	if review.AuthorID != strings.TrimSpace(cmd.AuthorID) {
		return entities.Review{}, domainerrors.ErrNotAuthor
	}

	if !entities.ValidRating(cmd.Rating) {
		return entities.Review{}, domainerrors.ErrInvalidRating
	}
	review.Rating = cmd.Rating
	if cmd.Comment != nil {
		review.Comment = strings.TrimSpace(*cmd.Comment)
	}
	review.UpdatedAt = s.Clock.Now().UTC()

	if err := s.Repo.SaveReview(ctx, review); err != nil {
		return entities.Review{}, err
	}

	s.logger().Info("review updated",
		"event", "review_updated",
		"module", "community/review-service",
		"layer", "application",
		"review_id", review.ReviewID,
	)
	return review, nil
}

// DeleteResult carries a summary of the removed review plus the company's
// refreshed rating aggregate.
type DeleteResult struct {
	Review  entities.Review
	Summary ports.RatingSummary
}

// Delete removes a review. Admins may delete any review; everyone else only
// their own.
func (s Service) Delete(ctx context.Context, reviewID, callerID string, callerRole scope.Role) (DeleteResult, error) {
	review, err := s.Repo.GetReview(ctx, strings.TrimSpace(reviewID))
	if err != nil {
		return DeleteResult{}, err
	}
	if callerRole != scope.RoleAdmin && review.AuthorID != strings.TrimSpace(callerID) {
		return DeleteResult{}, domainerrors.ErrNotAuthor
	}
	if err := s.Repo.DeleteReview(ctx, review.ReviewID); err != nil {
		return DeleteResult{}, err
	}

	s.logger().Info("review deleted",
		"event", "review_deleted",
		"module", "community/review-service",
		"layer", "application",
		"review_id", review.ReviewID,
		"company_id", review.CompanyID,
		"caller_id", strings.TrimSpace(callerID),
	)
	summary, err := s.AggregateForCompany(ctx, review.CompanyID)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Review: review, Summary: summary}, nil
}

func (s Service) ListForCompany(ctx context.Context, companyID string) ([]ports.ReviewDetail, error) {
	id := strings.TrimSpace(companyID)
	_, found, err := s.Repo.CompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrCompanyNotFound
	}
	return s.Repo.ListByCompany(ctx, id)
}

// ListMine returns the author's reviews joined with target-company
// summaries.
func (s Service) ListMine(ctx context.Context, authorID string) ([]ports.ReviewDetail, error) {
	return s.Repo.ListByAuthor(ctx, strings.TrimSpace(authorID))
}

// AggregateForCompany returns the review count and the average rating rounded
// to one decimal. A company without reviews aggregates to {0, 0}.
func (s Service) AggregateForCompany(ctx context.Context, companyID string) (ports.RatingSummary, error) {
	summary, err := s.Repo.Aggregate(ctx, strings.TrimSpace(companyID))
	if err != nil {
		return ports.RatingSummary{}, err
	}
	if summary.Count == 0 {
		return ports.RatingSummary{}, nil
	}
	summary.Average = math.Round(summary.Average*10) / 10
	return summary, nil
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
