package service

import (
	"context"
	"strings"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService registers users and the IANA zone their local days are cut in.
type UserService interface {
	// Create stores a user with the trimmed zone name. Unknown zones, an empty
	// name and "Local" return ErrInvalidInput.
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{repo: repo, log: log.Named("users")}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	loc, err := resolveTimezone(req.Timezone)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Timezone: loc.String(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("user_id", user.ID.String()), zap.String("timezone", user.Timezone))
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// resolveTimezone accepts IANA names only. "Local" would tie a user's days to
// the server's zone, and an empty name means UTC to time.LoadLocation.
func resolveTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return nil, domain.ErrInvalidInput
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return loc, nil
}
