package service

import (
	"context"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
)

// EMAService records and reads check-ins.
type EMAService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEMARequest) (*domain.EMA, error)
	// List returns every check-in of the user, oldest first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error)
	// Latest returns the most recent check-in or ErrNotFound.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error)
}

type emaService struct {
	repo     repository.EMARepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewEMAService(repo repository.EMARepository, userRepo repository.UserRepository) EMAService {
	return &emaService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *emaService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEMARequest) (*domain.EMA, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	ema := &domain.EMA{
		ID:                       uuid.New().String(),
		UserID:                   userID,
		Timestamp:                s.now().UTC(),
		Anger:                    req.Anger,
		Anxiety:                  req.Anxiety,
		Sadness:                  req.Sadness,
		Happiness:                req.Happiness,
		RecentStressfulEvent:     req.RecentStressfulEvent,
		SleepQuality:             req.SleepQuality,
		CaffeineRecent:           req.CaffeineRecent,
		AlcoholUse:               req.AlcoholUse,
		SubstanceType:            req.SubstanceType,
		SubstanceDescription:     req.SubstanceDescription,
		HasPositiveEvent:         req.HasPositiveEvent,
		PositiveEventIntensity:   req.PositiveEventIntensity,
		PositiveEventDescription: req.PositiveEventDescription,
		HasNegativeEvent:         req.HasNegativeEvent,
		NegativeEventIntensity:   req.NegativeEventIntensity,
		NegativeEventDescription: req.NegativeEventDescription,
		PreSessionActivity:       req.PreSessionActivity,
		SocialContext:            req.SocialContext,
		NoiseLevel:               req.NoiseLevel,
	}
	if req.ID != nil && *req.ID != "" {
		ema.ID = *req.ID
	}
	if req.Timestamp != nil {
		ema.Timestamp = req.Timestamp.UTC()
	}
	if req.SleepHours != nil {
		ema.SleepHours = *req.SleepHours
	}

	if err := ema.Validate(); err != nil {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, ema); err != nil {
		return nil, err
	}
	return ema, nil
}

func (s *emaService) List(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	emas, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if emas == nil {
		emas = []domain.EMA{}
	}
	return emas, nil
}

func (s *emaService) Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Latest(ctx, userID)
}

func (s *emaService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
