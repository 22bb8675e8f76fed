package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/langfuse"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/blaisecz/cogni-tracker/pkg/pagination"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Ensure(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; ok {
		return m.err
	}
	return m.Create(ctx, user)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// addUser stores a user in the given timezone and returns its ID.
func (m *MockUserRepository) addUser(timezone string) uuid.UUID {
	id := uuid.New()
	m.users[id] = &domain.User{ID: id, Timezone: timezone}
	return id
}

// MockEMARepository is a mock implementation of EMARepository
type MockEMARepository struct {
	emas []domain.EMA
	err  error
}

func NewMockEMARepository(emas ...domain.EMA) *MockEMARepository {
	return &MockEMARepository{emas: emas}
}

func (m *MockEMARepository) Create(ctx context.Context, ema *domain.EMA) error {
	if m.err != nil {
		return m.err
	}
	for _, e := range m.emas {
		if e.ID == ema.ID {
			return domain.ErrConflict
		}
	}
	m.emas = append(m.emas, *ema)
	return nil
}

func (m *MockEMARepository) GetByID(ctx context.Context, userID uuid.UUID, id string) (*domain.EMA, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.emas {
		if m.emas[i].ID == id && m.emas[i].UserID == userID {
			return &m.emas[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockEMARepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.EMA
	for _, e := range m.emas {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *MockEMARepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error) {
	emas, err := m.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(emas) == 0 {
		return nil, domain.ErrNotFound
	}
	return &emas[len(emas)-1], nil
}

func (m *MockEMARepository) LatestBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.EMA, error) {
	emas, err := m.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := len(emas) - 1; i >= 0; i-- {
		ts := emas[i].Timestamp
		if !ts.Before(from) && !ts.After(to) {
			return &emas[i], nil
		}
	}
	return nil, nil
}

func (m *MockEMARepository) Import(ctx context.Context, emas []domain.EMA) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	inserted := 0
	for i := range emas {
		if m.Create(ctx, &emas[i]) == nil {
			inserted++
		}
	}
	return inserted, nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	sessions   []domain.GameSession
	listResult []domain.GameSession
	lastFilter domain.SessionFilter
	err        error
}

func NewMockSessionRepository(sessions ...domain.GameSession) *MockSessionRepository {
	return &MockSessionRepository{sessions: sessions}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	if m.err != nil {
		return m.err
	}
	for _, s := range m.sessions {
		if s.ID == session.ID {
			return domain.ErrConflict
		}
	}
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GameSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.GameSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *MockSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.GameSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	if m.listResult != nil {
		return m.listResult, nil
	}
	limit := pagination.NormalizeLimit(filter.Limit)
	all, _ := m.ListByUser(ctx, userID)
	var out []domain.GameSession
	for i := len(all) - 1; i >= 0 && len(out) <= limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (m *MockSessionRepository) Import(ctx context.Context, sessions []domain.GameSession) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	inserted := 0
	for i := range sessions {
		if m.Create(ctx, &sessions[i]) == nil {
			inserted++
		}
	}
	return inserted, nil
}

// MockTransactor hands the mock repositories to fn and restores their
// contents when fn fails, mirroring a rollback.
type MockTransactor struct {
	emas     *MockEMARepository
	sessions *MockSessionRepository
	calls    int
}

func NewMockTransactor(emas *MockEMARepository, sessions *MockSessionRepository) *MockTransactor {
	return &MockTransactor{emas: emas, sessions: sessions}
}

func (m *MockTransactor) InTransaction(ctx context.Context, fn func(repository.EMARepository, repository.SessionRepository) error) error {
	m.calls++
	emas := append([]domain.EMA(nil), m.emas.emas...)
	sessions := append([]domain.GameSession(nil), m.sessions.sessions...)
	if err := fn(m.emas, m.sessions); err != nil {
		m.emas.emas = emas
		m.sessions.sessions = sessions
		return err
	}
	return nil
}

// stubGenerator returns a fixed text or error and records the last prompts.
type stubGenerator struct {
	text string
	err  error

	mu           sync.Mutex
	systemPrompt string
	prompt       string
	calls        int
}

func (g *stubGenerator) GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.systemPrompt = systemPrompt
	g.prompt = prompt
	return g.text, g.err
}

// fakeLangfuse records traces and scores in memory.
type fakeLangfuse struct {
	enabled bool
	err     error
	// block, when set, holds CreateTrace until it is closed.
	block chan struct{}

	mu     sync.Mutex
	traces []langfuse.TraceInput
	scores []langfuse.ScoreInput
}

func (f *fakeLangfuse) IsEnabled() bool { return f.enabled }

func (f *fakeLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.traces = append(f.traces, in)
	return in.ID, f.err
}

func (f *fakeLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores = append(f.scores, in)
	return f.err
}

var refNow = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func testEMA(userID uuid.UUID, id string, at time.Time, sleepHours float64) domain.EMA {
	return domain.EMA{
		ID:            id,
		UserID:        userID,
		Timestamp:     at,
		Anger:         1,
		Anxiety:       2,
		Sadness:       1,
		Happiness:     4,
		SleepHours:    sleepHours,
		SleepQuality:  4,
		AlcoholUse:    domain.AlcoholNone,
		SubstanceType: domain.SubstanceNone,
	}
}

func testSession(userID uuid.UUID, id string, at time.Time, game domain.GameType, score int, accuracy float64) domain.GameSession {
	return domain.GameSession{
		ID:              id,
		UserID:          userID,
		Timestamp:       at,
		GameType:        game,
		DifficultyLevel: 1,
		Score:           score,
		Accuracy:        accuracy,
	}
}
