package service

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/blaisecz/cogni-tracker/pkg/pagination"
	"github.com/google/uuid"
)

// DefaultEMALinkWindow is how far back a session looks for a check-in to link
// when the client does not name one.
const DefaultEMALinkWindow = 120 * time.Minute

type SessionService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.GameSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

type sessionService struct {
	repo       repository.SessionRepository
	emaRepo    repository.EMARepository
	userRepo   repository.UserRepository
	linkWindow time.Duration
	now        func() time.Time
}

// NewSessionService creates a SessionService. A non-positive linkWindow uses
// DefaultEMALinkWindow.
func NewSessionService(
	repo repository.SessionRepository,
	emaRepo repository.EMARepository,
	userRepo repository.UserRepository,
	linkWindow time.Duration,
) SessionService {
	if linkWindow <= 0 {
		linkWindow = DefaultEMALinkWindow
	}
	return &sessionService{
		repo:       repo,
		emaRepo:    emaRepo,
		userRepo:   userRepo,
		linkWindow: linkWindow,
		now:        time.Now,
	}
}

func (s *sessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.GameSession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	session := &domain.GameSession{
		ID:                      uuid.New().String(),
		UserID:                  userID,
		Timestamp:               s.now().UTC(),
		GameType:                req.GameType,
		DifficultyLevel:         req.DifficultyLevel,
		ReactionTimeMs:          req.ReactionTimeMs,
		ReactionTimeVariability: req.ReactionTimeVariability,
		OmissionErrors:          req.OmissionErrors,
		CommissionErrors:        req.CommissionErrors,
	}
	if req.ID != nil && *req.ID != "" {
		session.ID = *req.ID
	}
	if req.Timestamp != nil {
		session.Timestamp = req.Timestamp.UTC()
	}
	if req.Score != nil {
		session.Score = *req.Score
	}
	if req.Accuracy != nil {
		session.Accuracy = *req.Accuracy
	}

	if err := session.Validate(); err != nil {
		return nil, domain.ErrInvalidInput
	}

	ema, err := s.linkEMA(ctx, userID, session.Timestamp, req.EMAID)
	if err != nil {
		return nil, err
	}
	if ema != nil {
		session.EMAID = &ema.ID
		session.IsBaselineSession = ema.IsBaseline()
	} else if req.EMAID != nil && *req.EMAID != "" {
		// Unknown check-ins are kept as a dangling lookup key.
		session.EMAID = req.EMAID
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// linkEMA resolves the check-in preceding a session: the named one when an ID
// is given, otherwise the latest check-in within the link window.
func (s *sessionService) linkEMA(ctx context.Context, userID uuid.UUID, at time.Time, emaID *string) (*domain.EMA, error) {
	if emaID != nil && *emaID != "" {
		ema, err := s.emaRepo.GetByID(ctx, userID, *emaID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return ema, err
	}
	return s.emaRepo.LatestBetween(ctx, userID, at.Add(-s.linkWindow), at)
}

func (s *sessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sessions, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit
	if hasMore {
		sessions = sessions[:limit]
	}
	if sessions == nil {
		sessions = []domain.GameSession{}
	}

	response := &domain.SessionListResponse{
		Data: sessions,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.Timestamp,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
