package repository

import (
	"context"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	// Create appends a session. ErrConflict is returned when the ID is taken.
	Create(ctx context.Context, session *domain.GameSession) error
	// ListByUser returns every session of the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GameSession, error)
	// List returns one page of sessions, newest first, with one extra row when
	// more pages exist.
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.GameSession, error)
	Import(ctx context.Context, sessions []domain.GameSession) (int, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(session)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GameSession, error) {
	var sessions []domain.GameSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.GameSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC")

	if filter.From != nil {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", filter.To)
	}
	if filter.GameType != nil {
		query = query.Where("game_type = ?", *filter.GameType)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// For DESC order: older timestamps, or the same timestamp with a smaller id
		query = query.Where(
			"(timestamp < ?) OR (timestamp = ? AND id < ?)",
			cursor.Timestamp, cursor.Timestamp, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.GameSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Import(ctx context.Context, sessions []domain.GameSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		CreateInBatches(sessions, importBatchSize)
	return int(result.RowsAffected), result.Error
}
