package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"internhub/contexts/community/review-service/domain/entities"
	domainerrors "internhub/contexts/community/review-service/domain/errors"
	"internhub/contexts/community/review-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateReview(ctx context.Context, review entities.Review) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("author_id = ? AND company_id = ?", review.AuthorID, review.CompanyID).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrDuplicateReview
	}

	row := reviewModelFromEntity(review)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *Repository) GetReview(ctx context.Context, reviewID string) (entities.Review, error) {
	var row reviewModel
	err := r.db.WithContext(ctx).
		Where("review_id = ?", strings.TrimSpace(reviewID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Review{}, domainerrors.ErrReviewNotFound
		}
		return entities.Review{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveReview(ctx context.Context, review entities.Review) error {
	result := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("review_id = ?", review.ReviewID).
		Updates(map[string]any{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_at": review.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}
	return nil
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID string) error {
	result := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Delete(&reviewModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}
	return nil
}

func (r *Repository) ListByCompany(ctx context.Context, companyID string) ([]ports.ReviewDetail, error) {
	var rows []reviewDetailRow
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("reviews.*, identities.username AS author_username").
		Joins("LEFT JOIN identities ON identities.identity_id = reviews.author_id").
		Where("reviews.company_id = ?", companyID).
		Order("reviews.created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.ReviewDetail, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ReviewDetail{
			Review: row.reviewModel.toEntity(),
			Author: ports.AuthorRef{
				AuthorID: row.AuthorID,
				Username: row.AuthorUsername,
			},
		})
	}
	return items, nil
}

func (r *Repository) ListByAuthor(ctx context.Context, authorID string) ([]ports.ReviewDetail, error) {
	var rows []authorReviewRow
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("reviews.*, companies.name AS company_name, companies.website AS company_website").
		Joins("LEFT JOIN companies ON companies.company_id = reviews.company_id").
		Where("reviews.author_id = ?", authorID).
		Order("reviews.created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.ReviewDetail, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ReviewDetail{
			Review: row.reviewModel.toEntity(),
			Company: ports.CompanyRef{
				CompanyID: row.CompanyID,
				Name:      row.CompanyName,
				Website:   row.CompanyWebsite,
			},
		})
	}
	return items, nil
}

func (r *Repository) Aggregate(ctx context.Context, companyID string) (ports.RatingSummary, error) {
	var row struct {
		Average float64 `gorm:"column:average"`
		Count   int64   `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("company_id = ?", companyID).
		Scan(&row).
		Error
	if err != nil {
		return ports.RatingSummary{}, err
	}
	return ports.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

func (r *Repository) CompanyByID(ctx context.Context, companyID string) (ports.CompanyRef, bool, error) {
	var row companyProjectionModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", strings.TrimSpace(companyID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CompanyRef{}, false, nil
		}
		return ports.CompanyRef{}, false, err
	}
	return ports.CompanyRef{CompanyID: row.CompanyID, Name: row.Name, Website: row.Website}, true, nil
}

func (r *Repository) HasAcceptedApplication(ctx context.Context, studentID, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN internships ON internships.internship_id = applications.internship_id").
		Where("applications.student_id = ? AND internships.company_id = ? AND applications.status = ?",
			studentID, companyID, "ACCEPTED").
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type reviewModel struct {
	ReviewID  string    `gorm:"column:review_id;primaryKey"`
	AuthorID  string    `gorm:"column:author_id"`
	CompanyID string    `gorm:"column:company_id"`
	Rating    int       `gorm:"column:rating"`
	Comment   string    `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string {
	return "reviews"
}

type reviewDetailRow struct {
	reviewModel
	AuthorUsername string `gorm:"column:author_username"`
}

type authorReviewRow struct {
	reviewModel
	CompanyName    string `gorm:"column:company_name"`
	CompanyWebsite string `gorm:"column:company_website"`
}

func reviewModelFromEntity(item entities.Review) reviewModel {
	return reviewModel{
		ReviewID:  strings.TrimSpace(item.ReviewID),
		AuthorID:  strings.TrimSpace(item.AuthorID),
		CompanyID: strings.TrimSpace(item.CompanyID),
		Rating:    item.Rating,
		Comment:   item.Comment,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func (m reviewModel) toEntity() entities.Review {
	return entities.Review{
		ReviewID:  m.ReviewID,
		AuthorID:  m.AuthorID,
		CompanyID: m.CompanyID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type companyProjectionModel struct {
	CompanyID string `gorm:"column:company_id;primaryKey"`
	Name      string `gorm:"column:name"`
	Website   string `gorm:"column:website"`
}

func (companyProjectionModel) TableName() string {
	return "companies"
}
