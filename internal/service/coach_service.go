package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/analytics"
	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/langfuse"
	"github.com/blaisecz/cogni-tracker/internal/llm"
	"github.com/blaisecz/cogni-tracker/internal/metrics"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DefaultCoachPrompt is used when no managed prompt is available.
const DefaultCoachPrompt = "You are a supportive cognitive training coach. " +
	"Answer the user's question using only the training context provided. " +
	"Keep the answer under 150 words and never give medical advice."

const coachContextPeriod = domain.PeriodMonth

// CoachService answers free-text questions about the user's training.
type CoachService interface {
	Ask(ctx context.Context, userID uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error)
	// Feedback scores an earlier reply. It is a no-op when Langfuse is disabled.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error
	// Close waits for trace deliveries still in flight, or until ctx is done.
	Close(ctx context.Context) error
}

// SystemPrompt supplies the coach system prompt. *langfuse.PromptLoader
// implements it.
type SystemPrompt interface {
	Prompt(ctx context.Context) string
}

type coachService struct {
	loader   historyLoader
	gen      llm.TextGenerator
	policy   llm.FallbackPolicy
	langfuse langfuse.Client
	prompts  SystemPrompt
	log      *zap.Logger
	now      func() time.Time

	// pending tracks trace deliveries still in flight.
	pending sync.WaitGroup
}

func NewCoachService(
	userRepo repository.UserRepository,
	emaRepo repository.EMARepository,
	sessionRepo repository.SessionRepository,
	gen llm.TextGenerator,
	policy llm.FallbackPolicy,
	lf langfuse.Client,
	prompts SystemPrompt,
	log *zap.Logger,
) CoachService {
	if log == nil {
		log = zap.NewNop()
	}
	return &coachService{
		loader:   historyLoader{userRepo: userRepo, emaRepo: emaRepo, sessionRepo: sessionRepo},
		gen:      gen,
		policy:   policy,
		langfuse: lf,
		prompts:  prompts,
		log:      log.Named("coach"),
		now:      time.Now,
	}
}

func (s *coachService) Ask(ctx context.Context, userID uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	tracer := otel.Tracer("cogni-tracker/coach")
	ctx, span := tracer.Start(ctx, "coach.ask")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	h, err := s.loader.load(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	report := analytics.BuildReport(h.sessions, h.emas, coachContextPeriod, analytics.Clock{
		Now:      s.now(),
		Location: h.user.Location(),
	})
	prompt := coachPrompt(&report, message)
	span.SetAttributes(attribute.String("langfuse.observation.input", prompt))

	c := s.policy.Complete(ctx, s.gen, s.systemPrompt(ctx), prompt)
	metrics.ObserveCompletion("coach", c.Fallback)
	if c.Fallback {
		s.log.Warn("coach fallback", zap.String("user_id", userID.String()), zap.Error(c.Err))
	}
	span.SetAttributes(attribute.String("langfuse.observation.output", c.Text))

	reply := &domain.CoachReply{Reply: c.Text, Fallback: c.Fallback}
	if s.langfuse != nil && s.langfuse.IsEnabled() {
		reply.TraceID = uuid.New().String()
		s.sendTrace(userID, reply, message, report.Score.Total)
	}
	return reply, nil
}

// sendTrace delivers the trace in the background so Langfuse latency never
// reaches the caller.
func (s *coachService) sendTrace(userID uuid.UUID, reply *domain.CoachReply, message string, score int) {
	in := langfuse.TraceInput{
		ID:     reply.TraceID,
		UserID: userID.String(),
		Name:   "coach-reply",
		Input: map[string]any{
			"message":           message,
			"performance_score": score,
		},
		Output: map[string]any{
			"reply":    reply.Reply,
			"fallback": reply.Fallback,
		},
		Tags: []string{"coach"},
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), langfuse.SendTimeout)
		defer cancel()
		_, _ = s.langfuse.CreateTrace(ctx, in)
	}()
}

func (s *coachService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.CoachFeedbackRequest) error {
	exists, err := s.loader.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	if req.Score < 1 || req.Score > 5 || req.TraceID == "" {
		return domain.ErrInvalidInput
	}
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		return nil
	}

	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}

func (s *coachService) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *coachService) systemPrompt(ctx context.Context) string {
	if s.prompts == nil {
		return DefaultCoachPrompt
	}
	if prompt := s.prompts.Prompt(ctx); strings.TrimSpace(prompt) != "" {
		return prompt
	}
	return DefaultCoachPrompt
}

func coachPrompt(report *domain.Report, message string) string {
	var b strings.Builder
	b.WriteString(ReportPrompt(report))
	fmt.Fprintf(&b, "\nUser question: %s\n", message)
	return b.String()
}
