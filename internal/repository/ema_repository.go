package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// importBatchSize bounds the number of rows per INSERT during imports.
const importBatchSize = 200

type EMARepository interface {
	// Create appends a check-in. ErrConflict is returned when the ID is taken.
	Create(ctx context.Context, ema *domain.EMA) error
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*domain.EMA, error)
	// ListByUser returns every check-in of the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error)
	// Latest returns the most recent check-in or ErrNotFound.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error)
	// LatestBetween returns the most recent check-in in [from, to], or nil.
	LatestBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.EMA, error)
	// Import appends check-ins whose IDs are not stored yet and returns how many
	// were inserted.
	Import(ctx context.Context, emas []domain.EMA) (int, error)
}

type emaRepository struct {
	db *gorm.DB
}

func NewEMARepository(db *gorm.DB) EMARepository {
	return &emaRepository{db: db}
}

func (r *emaRepository) Create(ctx context.Context, ema *domain.EMA) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(ema)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *emaRepository) GetByID(ctx context.Context, userID uuid.UUID, id string) (*domain.EMA, error) {
	var ema domain.EMA
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&ema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ema, nil
}

func (r *emaRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error) {
	var emas []domain.EMA
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&emas).Error
	return emas, err
}

func (r *emaRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error) {
	var ema domain.EMA
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		First(&ema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ema, nil
}

func (r *emaRepository) LatestBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.EMA, error) {
	var ema domain.EMA
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Order("timestamp DESC, id DESC").
		First(&ema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No check-in to link is not an error
		}
		return nil, err
	}
	return &ema, nil
}

func (r *emaRepository) Import(ctx context.Context, emas []domain.EMA) (int, error) {
	if len(emas) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		CreateInBatches(emas, importBatchSize)
	return int(result.RowsAffected), result.Error
}
