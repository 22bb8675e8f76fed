package service

import (
	"context"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/metrics"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportService moves a user's complete record history in and out as a single
// JSON document.
type ExportService interface {
	Export(ctx context.Context, userID uuid.UUID) (*domain.DataExport, error)
	// Import appends every record whose ID is not stored yet. The document is
	// validated first; one malformed record rejects the whole import. Record IDs
	// are unique across users, so an ID already held by another user counts as
	// skipped.
	Import(ctx context.Context, userID uuid.UUID, doc *domain.DataExport) (*domain.ImportResult, error)
}

type exportService struct {
	loader historyLoader
	tx     repository.Transactor
	log    *zap.Logger
	now    func() time.Time
}

func NewExportService(
	userRepo repository.UserRepository,
	emaRepo repository.EMARepository,
	sessionRepo repository.SessionRepository,
	tx repository.Transactor,
	log *zap.Logger,
) ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &exportService{
		loader: historyLoader{userRepo: userRepo, emaRepo: emaRepo, sessionRepo: sessionRepo},
		tx:     tx,
		log:    log.Named("export"),
		now:    time.Now,
	}
}

func (s *exportService) Export(ctx context.Context, userID uuid.UUID) (*domain.DataExport, error) {
	h, err := s.loader.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.NewDataExport(h.emas, h.sessions, s.now()), nil
}

func (s *exportService) Import(ctx context.Context, userID uuid.UUID, doc *domain.DataExport) (*domain.ImportResult, error) {
	exists, err := s.loader.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	emas := make([]domain.EMA, len(doc.EMAs))
	for i, e := range doc.EMAs {
		e.UserID = userID
		e.Timestamp = e.Timestamp.UTC()
		emas[i] = e
	}
	sessions := make([]domain.GameSession, len(doc.Sessions))
	for i, gs := range doc.Sessions {
		gs.UserID = userID
		gs.Timestamp = gs.Timestamp.UTC()
		sessions[i] = gs
	}

	// Both record kinds land together or not at all.
	var emasImported, sessionsImported int
	err = s.tx.InTransaction(ctx, func(emaRepo repository.EMARepository, sessionRepo repository.SessionRepository) error {
		var err error
		if emasImported, err = emaRepo.Import(ctx, emas); err != nil {
			return err
		}
		sessionsImported, err = sessionRepo.Import(ctx, sessions)
		return err
	})
	if err != nil {
		s.log.Warn("import rolled back", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	metrics.RecordsImported.WithLabelValues("ema").Add(float64(emasImported))
	metrics.RecordsImported.WithLabelValues("session").Add(float64(sessionsImported))
	s.log.Info("import finished",
		zap.String("user_id", userID.String()),
		zap.Int("emas", emasImported),
		zap.Int("sessions", sessionsImported),
	)

	return &domain.ImportResult{
		EMAsImported:     emasImported,
		SessionsImported: sessionsImported,
		EMAsSkipped:      len(emas) - emasImported,
		SessionsSkipped:  len(sessions) - sessionsImported,
	}, nil
}
