package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"internhub/contexts/recruiting/application-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/application-service/domain/errors"
	"internhub/contexts/recruiting/application-service/ports"

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

func (r *Repository) CreateApplication(ctx context.Context, application entities.Application) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("student_id = ? AND internship_id = ?", application.StudentID, application.InternshipID).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrDuplicateApplication
	}

	row := applicationModelFromEntity(application)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListDetailed(ctx context.Context, filter ports.ApplicationFilter) ([]ports.ApplicationDetail, error) {
	tx := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Select(`applications.*,
			identities.username AS student_username,
			identities.email AS student_email,
			internships.company_id AS internship_company_id,
			internships.title AS internship_title,
			companies.name AS company_name`).
		Joins("LEFT JOIN identities ON identities.identity_id = applications.student_id").
		Joins("LEFT JOIN internships ON internships.internship_id = applications.internship_id").
		Joins("LEFT JOIN companies ON companies.company_id = internships.company_id")
	if filter.ApplicationID != "" {
		tx = tx.Where("applications.application_id = ?", filter.ApplicationID)
	}
	if filter.StudentID != "" {
		tx = tx.Where("applications.student_id = ?", filter.StudentID)
	}
	if filter.CompanyID != "" {
		tx = tx.Where("internships.company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		tx = tx.Where("applications.status = ?", string(filter.Status))
	}

	var rows []applicationDetailRow
	if err := tx.Order("applications.created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDetail())
	}
	return items, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, applicationID string, status entities.ApplicationStatus, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) CountByInternship(ctx context.Context, internshipID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("internship_id = ?", strings.TrimSpace(internshipID)).
		Count(&count).
		Error
	return count, err
}

func (r *Repository) InternshipByID(ctx context.Context, internshipID string) (ports.InternshipRef, bool, error) {
	var row internshipProjectionModel
	err := r.db.WithContext(ctx).
		Where("internship_id = ?", strings.TrimSpace(internshipID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.InternshipRef{}, false, nil
		}
		return ports.InternshipRef{}, false, err
	}
	return ports.InternshipRef{
		InternshipID: row.InternshipID,
		CompanyID:    row.CompanyID,
		Title:        row.Title,
	}, true, nil
}

func (r *Repository) CompanyIDForIdentity(ctx context.Context, identityID string) (string, bool, error) {
	var row companyProjectionModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.CompanyID, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type applicationModel struct {
	ApplicationID string    `gorm:"column:application_id;primaryKey"`
	StudentID     string    `gorm:"column:student_id"`
	InternshipID  string    `gorm:"column:internship_id"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string {
	return "applications"
}

type applicationDetailRow struct {
	applicationModel
	StudentUsername     string `gorm:"column:student_username"`
	StudentEmail        string `gorm:"column:student_email"`
	InternshipCompanyID string `gorm:"column:internship_company_id"`
	InternshipTitle     string `gorm:"column:internship_title"`
	CompanyName         string `gorm:"column:company_name"`
}

func (row applicationDetailRow) toDetail() ports.ApplicationDetail {
	return ports.ApplicationDetail{
		Application: row.applicationModel.toEntity(),
		Student: ports.StudentRef{
			StudentID: row.StudentID,
			Username:  row.StudentUsername,
			Email:     row.StudentEmail,
		},
		Internship: ports.InternshipRef{
			InternshipID: row.InternshipID,
			CompanyID:    row.InternshipCompanyID,
			Title:        row.InternshipTitle,
		},
		Company: ports.CompanyRef{
			CompanyID: row.InternshipCompanyID,
			Name:      row.CompanyName,
		},
	}
}

func applicationModelFromEntity(item entities.Application) applicationModel {
	return applicationModel{
		ApplicationID: strings.TrimSpace(item.ApplicationID),
		StudentID:     strings.TrimSpace(item.StudentID),
		InternshipID:  strings.TrimSpace(item.InternshipID),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ApplicationID: m.ApplicationID,
		StudentID:     m.StudentID,
		InternshipID:  m.InternshipID,
		Status:        entities.ApplicationStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type internshipProjectionModel struct {
	InternshipID string `gorm:"column:internship_id;primaryKey"`
	CompanyID    string `gorm:"column:company_id"`
	Title        string `gorm:"column:title"`
}

func (internshipProjectionModel) TableName() string {
	return "internships"
}

type companyProjectionModel struct {
	CompanyID  string `gorm:"column:company_id;primaryKey"`
	IdentityID string `gorm:"column:identity_id"`
}

func (companyProjectionModel) TableName() string {
	return "companies"
}
