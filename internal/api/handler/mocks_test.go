package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withUserID attaches the chi userId URL parameter to req.
func withUserID(req *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

var testTime = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockEMAService is a mock implementation of EMAService
type MockEMAService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateEMARequest) (*domain.EMA, error)
	listFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error)
	latestFunc func(ctx context.Context, userID uuid.UUID) (*domain.EMA, error)
}

func (m *MockEMAService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateEMARequest) (*domain.EMA, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.EMA{
		ID:            "ema-1",
		UserID:        userID,
		Timestamp:     testTime,
		Anger:         req.Anger,
		Anxiety:       req.Anxiety,
		Sadness:       req.Sadness,
		Happiness:     req.Happiness,
		SleepHours:    *req.SleepHours,
		SleepQuality:  req.SleepQuality,
		AlcoholUse:    req.AlcoholUse,
		SubstanceType: req.SubstanceType,
	}, nil
}

func (m *MockEMAService) List(ctx context.Context, userID uuid.UUID) ([]domain.EMA, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.EMA{}, nil
}

func (m *MockEMAService) Latest(ctx context.Context, userID uuid.UUID) (*domain.EMA, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.GameSession, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.GameSession, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.GameSession{
		ID:              "session-1",
		UserID:          userID,
		Timestamp:       testTime,
		GameType:        req.GameType,
		DifficultyLevel: req.DifficultyLevel,
		Score:           *req.Score,
		Accuracy:        *req.Accuracy,
	}, nil
}

func (m *MockSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SessionListResponse{
		Data:       []domain.GameSession{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	summaryFunc func(ctx context.Context, userID uuid.UUID) (*domain.AnalyticsResponse, error)
	profileFunc func(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error)
	reportFunc  func(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod, narrative bool) (*domain.Report, error)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.AnalyticsResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return &domain.AnalyticsResponse{}, nil
}

func (m *MockAnalyticsService) Profile(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, userID)
	}
	return &domain.ProfileStats{}, nil
}

func (m *MockAnalyticsService) Report(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod, narrative bool) (*domain.Report, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, userID, period, narrative)
	}
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	return &domain.Report{Period: period, GeneratedAt: testTime}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	askFunc      func(ctx context.Context, userID uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error
}

func (m *MockCoachService) Ask(ctx context.Context, userID uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error) {
	if m.askFunc != nil {
		return m.askFunc(ctx, userID, req)
	}
	return &domain.CoachReply{Reply: "Keep it up."}, nil
}

func (m *MockCoachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockCoachService) Close(ctx context.Context) error { return nil }

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	exportFunc func(ctx context.Context, userID uuid.UUID) (*domain.DataExport, error)
	importFunc func(ctx context.Context, userID uuid.UUID, doc *domain.DataExport) (*domain.ImportResult, error)
}

func (m *MockExportService) Export(ctx context.Context, userID uuid.UUID) (*domain.DataExport, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, userID)
	}
	return domain.NewDataExport(nil, nil, testTime), nil
}

func (m *MockExportService) Import(ctx context.Context, userID uuid.UUID, doc *domain.DataExport) (*domain.ImportResult, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, userID, doc)
	}
	return &domain.ImportResult{EMAsImported: len(doc.EMAs), SessionsImported: len(doc.Sessions)}, nil
}
