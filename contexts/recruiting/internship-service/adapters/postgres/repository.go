package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"internhub/contexts/recruiting/internship-service/domain/entities"
	domainerrors "internhub/contexts/recruiting/internship-service/domain/errors"
	"internhub/contexts/recruiting/internship-service/ports"

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

func (r *Repository) CreateInternship(ctx context.Context, internship entities.Internship) error {
	row := internshipModelFromEntity(internship)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetInternship(ctx context.Context, internshipID string) (entities.Internship, error) {
	var row internshipModel
	err := r.db.WithContext(ctx).
		Where("internship_id = ?", strings.TrimSpace(internshipID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Internship{}, domainerrors.ErrInternshipNotFound
		}
		return entities.Internship{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]ports.InternshipListing, error) {
	return r.list(ctx, "")
}

func (r *Repository) ListByCompany(ctx context.Context, companyID string) ([]ports.InternshipListing, error) {
	return r.list(ctx, strings.TrimSpace(companyID))
}

func (r *Repository) list(ctx context.Context, companyID string) ([]ports.InternshipListing, error) {
	tx := r.db.WithContext(ctx).
		Model(&internshipModel{}).
		Select(`internships.*,
			companies.name AS company_name,
			companies.website AS company_website,
			(SELECT COUNT(*) FROM applications WHERE applications.internship_id = internships.internship_id) AS application_count`).
		Joins("LEFT JOIN companies ON companies.company_id = internships.company_id")
	if companyID != "" {
		tx = tx.Where("internships.company_id = ?", companyID)
	}

	var rows []internshipListingRow
	if err := tx.Order("internships.created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.InternshipListing, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.InternshipListing{
			Internship: row.internshipModel.toEntity(),
			Company: ports.CompanyRef{
				CompanyID: row.CompanyID,
				Name:      row.CompanyName,
				Website:   row.CompanyWebsite,
			},
			ApplicationCount: row.ApplicationCount,
		})
	}
	return items, nil
}

func (r *Repository) CompanyByIdentity(ctx context.Context, identityID string) (ports.CompanyRef, bool, error) {
	var row companyProjectionModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CompanyRef{}, false, nil
		}
		return ports.CompanyRef{}, false, err
	}
	return ports.CompanyRef{
		CompanyID: row.CompanyID,
		Name:      row.Name,
		Website:   row.Website,
	}, true, nil
}

type internshipModel struct {
	InternshipID string    `gorm:"column:internship_id;primaryKey"`
	CompanyID    string    `gorm:"column:company_id"`
	Title        string    `gorm:"column:title"`
	Location     string    `gorm:"column:location"`
	Description  string    `gorm:"column:description"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (internshipModel) TableName() string {
	return "internships"
}

type internshipListingRow struct {
	internshipModel
	CompanyName      string `gorm:"column:company_name"`
	CompanyWebsite   string `gorm:"column:company_website"`
	ApplicationCount int64  `gorm:"column:application_count"`
}

func internshipModelFromEntity(item entities.Internship) internshipModel {
	return internshipModel{
		InternshipID: strings.TrimSpace(item.InternshipID),
		CompanyID:    strings.TrimSpace(item.CompanyID),
		Title:        strings.TrimSpace(item.Title),
		Location:     strings.TrimSpace(item.Location),
		Description:  strings.TrimSpace(item.Description),
		CreatedAt:    item.CreatedAt.UTC(),
	}
}

func (m internshipModel) toEntity() entities.Internship {
	return entities.Internship{
		InternshipID: m.InternshipID,
		CompanyID:    m.CompanyID,
		Title:        m.Title,
		Location:     m.Location,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

type companyProjectionModel struct {
	CompanyID  string `gorm:"column:company_id;primaryKey"`
	IdentityID string `gorm:"column:identity_id"`
	Name       string `gorm:"column:name"`
	Website    string `gorm:"column:website"`
}

func (companyProjectionModel) TableName() string {
	return "companies"
}
