package service

import (
	"context"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// history is everything recorded for one user.
type history struct {
	user     *domain.User
	emas     []domain.EMA
	sessions []domain.GameSession
}

// historyLoader reads a user's complete record history. Check-ins and
// sessions are fetched concurrently once the user is known to exist.
type historyLoader struct {
	userRepo    repository.UserRepository
	emaRepo     repository.EMARepository
	sessionRepo repository.SessionRepository
}

func (l historyLoader) load(ctx context.Context, userID uuid.UUID) (*history, error) {
	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	h := &history{user: user}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emas, err := l.emaRepo.ListByUser(gctx, userID)
		h.emas = emas
		return err
	})
	g.Go(func() error {
		sessions, err := l.sessionRepo.ListByUser(gctx, userID)
		h.sessions = sessions
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h, nil
}
