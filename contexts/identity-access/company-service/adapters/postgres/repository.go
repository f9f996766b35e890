package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"internhub/contexts/identity-access/company-service/domain/entities"
	domainerrors "internhub/contexts/identity-access/company-service/domain/errors"
	"internhub/contexts/identity-access/company-service/ports"

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

func (r *Repository) CreateCompanyWithIdentity(ctx context.Context, identity entities.Identity, company entities.Company) error {
	email := strings.ToLower(strings.TrimSpace(company.Email))

	var identityCount int64
	if err := r.db.WithContext(ctx).
		Model(&identityModel{}).
		Where("lower(email) = ?", email).
		Count(&identityCount).
		Error; err != nil {
		return err
	}
	if identityCount > 0 {
		return domainerrors.ErrEmailTaken
	}

	var companyCount int64
	if err := r.db.WithContext(ctx).
		Model(&companyModel{}).
		Where("lower(email) = ?", email).
		Count(&companyCount).
		Error; err != nil {
		return err
	}
	if companyCount > 0 {
		return domainerrors.ErrEmailTaken
	}

	// Both rows or neither; the unique email indexes catch pre-check races.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		identityRow := identityModelFromEntity(identity)
		if err := tx.Create(&identityRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrEmailTaken
			}
			return err
		}
		companyRow := companyModelFromEntity(company)
		if err := tx.Create(&companyRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrEmailTaken
			}
			return err
		}
		return nil
	})
}

func (r *Repository) GetCompany(ctx context.Context, companyID string) (entities.Company, error) {
	var row companyModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", strings.TrimSpace(companyID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Company{}, domainerrors.ErrCompanyNotFound
		}
		return entities.Company{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCompanyByIdentity(ctx context.Context, identityID string) (entities.Company, error) {
	var row companyModel
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", strings.TrimSpace(identityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Company{}, domainerrors.ErrCompanyNotFound
		}
		return entities.Company{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SetStatus(ctx context.Context, companyID string, status entities.CompanyStatus, now time.Time) (entities.Company, error) {
	result := r.db.WithContext(ctx).
		Model(&companyModel{}).
		Where("company_id = ?", strings.TrimSpace(companyID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return entities.Company{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Company{}, domainerrors.ErrCompanyNotFound
	}
	return r.GetCompany(ctx, companyID)
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.CompanyStatus) ([]ports.CompanyProfile, error) {
	var rows []companyProfileRow
	err := r.db.WithContext(ctx).
		Model(&companyModel{}).
		Select("companies.*, identities.username AS username").
		Joins("LEFT JOIN identities ON identities.identity_id = companies.identity_id").
		Where("companies.status = ?", string(status)).
		Order("companies.created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.CompanyProfile, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.CompanyProfile{
			Company:  row.companyModel.toEntity(),
			Username: row.Username,
		})
	}
	return items, nil
}

type companyModel struct {
	CompanyID   string    `gorm:"column:company_id;primaryKey"`
	IdentityID  string    `gorm:"column:identity_id"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email"`
	Website     string    `gorm:"column:website"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (companyModel) TableName() string {
	return "companies"
}

type companyProfileRow struct {
	companyModel
	Username string `gorm:"column:username"`
}

func companyModelFromEntity(item entities.Company) companyModel {
	return companyModel{
		CompanyID:   strings.TrimSpace(item.CompanyID),
		IdentityID:  strings.TrimSpace(item.IdentityID),
		Name:        strings.TrimSpace(item.Name),
		Email:       strings.ToLower(strings.TrimSpace(item.Email)),
		Website:     strings.TrimSpace(item.Website),
		Description: strings.TrimSpace(item.Description),
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m companyModel) toEntity() entities.Company {
	return entities.Company{
		CompanyID:   m.CompanyID,
		IdentityID:  m.IdentityID,
		Name:        m.Name,
		Email:       m.Email,
		Website:     m.Website,
		Description: m.Description,
		Status:      entities.CompanyStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

type identityModel struct {
	IdentityID string    `gorm:"column:identity_id;primaryKey"`
	Username   string    `gorm:"column:username"`
	Email      string    `gorm:"column:email"`
	Role       string    `gorm:"column:role"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (identityModel) TableName() string {
	return "identities"
}

func identityModelFromEntity(item entities.Identity) identityModel {
	return identityModel{
		IdentityID: strings.TrimSpace(item.IdentityID),
		Username:   strings.TrimSpace(item.Username),
		Email:      strings.ToLower(strings.TrimSpace(item.Email)),
		Role:       strings.TrimSpace(item.Role),
		CreatedAt:  item.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
