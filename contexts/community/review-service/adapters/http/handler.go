package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"internhub/contexts/community/review-service/application"
	"internhub/contexts/community/review-service/domain/entities"
	httptransport "internhub/contexts/community/review-service/transport/http"
	"internhub/internal/shared/scope"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateReviewHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateReviewRequest,
) (httptransport.ReviewResponse, error) {
	review, err := h.Service.Create(ctx, application.CreateCommand{
		AuthorID:  callerID,
		CompanyID: req.CompanyID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return httptransport.ReviewResponse{}, err
	}
	return httptransport.ReviewResponse{Review: mapReview(review)}, nil
}

func (h Handler) UpdateReviewHandler(
	ctx context.Context,
	callerID string,
	reviewID string,
	req httptransport.UpdateReviewRequest,
) (httptransport.ReviewResponse, error) {
	review, err := h.Service.Update(ctx, application.UpdateCommand{
		ReviewID: reviewID,
		AuthorID: callerID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return httptransport.ReviewResponse{}, err
	}
	return httptransport.ReviewResponse{Review: mapReview(review)}, nil
}

func (h Handler) DeleteReviewHandler(
	ctx context.Context,
	callerID string,
	callerRole string,
	reviewID string,
) (httptransport.DeleteReviewResponse, error) {
	result, err := h.Service.Delete(ctx, reviewID, callerID, scope.ParseRole(callerRole))
	if err != nil {
		return httptransport.DeleteReviewResponse{}, err
	}
	return httptransport.DeleteReviewResponse{
		Deleted: httptransport.DeletedReviewDTO{
			ReviewID: result.Review.ReviewID,
			Rating:   result.Review.Rating,
			Comment:  result.Review.Comment,
		},
		Summary: httptransport.RatingSummaryDTO{
			CompanyID: result.Review.CompanyID,
			Average:   result.Summary.Average,
			Count:     result.Summary.Count,
		},
	}, nil
}

func (h Handler) ListCompanyReviewsHandler(ctx context.Context, companyID string) (httptransport.ListReviewsResponse, error) {
	details, err := h.Service.ListForCompany(ctx, companyID)
	if err != nil {
		return httptransport.ListReviewsResponse{}, err
	}
	items := make([]httptransport.ReviewDTO, 0, len(details))
	for _, detail := range details {
		dto := mapReview(detail.Review)
		dto.AuthorUsername = detail.Author.Username
		items = append(items, dto)
	}
	return httptransport.ListReviewsResponse{Items: items}, nil
}

func (h Handler) ListMyReviewsHandler(ctx context.Context, callerID string) (httptransport.ListReviewsResponse, error) {
	details, err := h.Service.ListMine(ctx, callerID)
	if err != nil {
		return httptransport.ListReviewsResponse{}, err
	}
	items := make([]httptransport.ReviewDTO, 0, len(details))
	for _, detail := range details {
		dto := mapReview(detail.Review)
		dto.CompanyName = detail.Company.Name
		dto.CompanyWebsite = detail.Company.Website
		items = append(items, dto)
	}
	return httptransport.ListReviewsResponse{Items: items}, nil
}

func (h Handler) CompanyRatingHandler(ctx context.Context, companyID string) (httptransport.CompanyRatingResponse, error) {
	summary, err := h.Service.AggregateForCompany(ctx, companyID)
	if err != nil {
		return httptransport.CompanyRatingResponse{}, err
	}
	return httptransport.CompanyRatingResponse{
		Summary: httptransport.RatingSummaryDTO{
			CompanyID: companyID,
			Average:   summary.Average,
			Count:     summary.Count,
		},
	}, nil
}

func mapReview(item entities.Review) httptransport.ReviewDTO {
	return httptransport.ReviewDTO{
		ReviewID:  item.ReviewID,
		AuthorID:  item.AuthorID,
		CompanyID: item.CompanyID,
		Rating:    item.Rating,
		Comment:   item.Comment,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}
