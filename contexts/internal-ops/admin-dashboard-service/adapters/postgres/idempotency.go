package postgresadapter

import (
	"context"
	"errors"
	"time"

	domainerrors "internhub/contexts/internal-ops/admin-dashboard-service/domain/errors"
	"internhub/contexts/internal-ops/admin-dashboard-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type IdempotencyStore struct {
	db *gorm.DB
}

func NewIdempotencyStore(db *gorm.DB) *IdempotencyStore {
	return &IdempotencyStore{db: db}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string, now time.Time) (*ports.IdempotencyRecord, error) {
	var row idempotencyModel
	err := s.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now.UTC()).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ports.IdempotencyRecord{
		Key:          row.Key,
		RequestHash:  row.RequestHash,
		ResponseBody: row.ResponseBody,
		ExpiresAt:    row.ExpiresAt.UTC(),
	}, nil
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key, requestHash string, expiresAt time.Time) error {
	row := idempotencyModel{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			var existing idempotencyModel
			if lookupErr := s.db.WithContext(ctx).Where("key = ?", key).First(&existing).Error; lookupErr != nil {
				return lookupErr
			}
			if existing.RequestHash != requestHash {
				return domainerrors.ErrIdempotencyConflict
			}
			return nil
		}
		return err
	}
	return nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, responseBody []byte, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&idempotencyModel{}).
		Where("key = ?", key).
		Update("response_body", responseBody).
		Error
}

type idempotencyModel struct {
	Key          string    `gorm:"column:key;primaryKey"`
	RequestHash  string    `gorm:"column:request_hash"`
	ResponseBody []byte    `gorm:"column:response_body"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "admin_idempotency_keys"
}
