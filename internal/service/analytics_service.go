package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/analytics"
	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/llm"
	"github.com/blaisecz/cogni-tracker/internal/metrics"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const narrativeSystemPrompt = "You are a friendly cognitive training coach. " +
	"Summarise the user's training report in three short paragraphs. " +
	"Refer only to the numbers given. Do not give medical advice."

// AnalyticsService computes summaries, profile statistics and period reports
// from a user's complete history.
type AnalyticsService interface {
	// Summary returns the all-time analytics. Summary is nil without sessions.
	Summary(ctx context.Context, userID uuid.UUID) (*domain.AnalyticsResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error)
	// Report builds the period report. With narrative set, an AI summary is
	// attached; generator failures fall back to a static message.
	Report(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod, narrative bool) (*domain.Report, error)
}

type analyticsService struct {
	loader historyLoader
	gen    llm.TextGenerator
	policy llm.FallbackPolicy
	log    *zap.Logger
	now    func() time.Time
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	emaRepo repository.EMARepository,
	sessionRepo repository.SessionRepository,
	gen llm.TextGenerator,
	policy llm.FallbackPolicy,
	log *zap.Logger,
) AnalyticsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &analyticsService{
		loader: historyLoader{userRepo: userRepo, emaRepo: emaRepo, sessionRepo: sessionRepo},
		gen:    gen,
		policy: policy,
		log:    log.Named("analytics"),
		now:    time.Now,
	}
}

func (s *analyticsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.AnalyticsResponse, error) {
	h, err := s.loader.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.AnalyticsResponse{
		Summary: analytics.Summarize(h.sessions, h.emas, h.user.Location()),
	}, nil
}

func (s *analyticsService) Profile(ctx context.Context, userID uuid.UUID) (*domain.ProfileStats, error) {
	h, err := s.loader.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := analytics.Profile(h.sessions, h.emas, s.now(), h.user.Location())
	return &stats, nil
}

func (s *analyticsService) Report(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod, narrative bool) (*domain.Report, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	tracer := otel.Tracer("cogni-tracker/analytics")
	ctx, span := tracer.Start(ctx, "analytics.report")
	defer span.End()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Int("report.period", period.Days()),
	)

	h, err := s.loader.load(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	report := analytics.BuildReport(h.sessions, h.emas, period, analytics.Clock{
		Now:      s.now(),
		Location: h.user.Location(),
	})
	metrics.ObserveReport(period.Days())

	if narrative {
		prompt := ReportPrompt(&report)
		span.SetAttributes(attribute.String("langfuse.observation.input", prompt))

		c := s.policy.Complete(ctx, s.gen, narrativeSystemPrompt, prompt)
		if c.Fallback {
			s.log.Warn("narrative fallback",
				zap.String("user_id", userID.String()),
				zap.Error(c.Err),
			)
		}
		metrics.ObserveCompletion("narrative", c.Fallback)
		report.Narrative = c.Text
		report.NarrativeFallback = c.Fallback

		if out, err := json.Marshal(map[string]any{"narrative": c.Text, "fallback": c.Fallback}); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(out)))
		}
	}

	return &report, nil
}

// ReportPrompt renders the report figures a text generator is allowed to use.
func ReportPrompt(r *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Training report for the last %d days (%s).\n", r.Period.Days(), r.Timezone)
	fmt.Fprintf(&b, "Sessions: %d, check-ins: %d, current streak: %d days, longest streak: %d days.\n",
		r.SessionCount, r.EMACount, r.CurrentStreak, r.LongestStreak)
	fmt.Fprintf(&b, "Performance score: %d/100 (accuracy %d, streak %d, improvement %d, variety %d).\n",
		r.Score.Total, r.Score.AccuracyPoints, r.Score.StreakPoints, r.Score.ImprovementPoints, r.Score.VarietyPoints)
	if r.Mood.Entries > 0 {
		fmt.Fprintf(&b, "Mood: %s\n", r.Mood.Interpretation)
	}
	if r.Sleep.Entries > 0 {
		fmt.Fprintf(&b, "Sleep: %.1f hours on average. %s\n", r.Sleep.AvgHours, r.Sleep.QualityInterpretation)
	}
	if r.Circadian.HasEnoughData {
		fmt.Fprintf(&b, "Circadian: %s\n", r.Circadian.Recommendation)
	}
	for _, g := range r.GameStats {
		fmt.Fprintf(&b, "%s: %d sessions, average score %.1f, accuracy %.0f%%.\n",
			g.GameType.DisplayName(), g.SessionsPlayed, g.AvgScore, g.AvgAccuracy*100)
	}
	if r.FatigueDetected {
		b.WriteString("Fatigue was detected in recent sessions.\n")
	}
	for _, in := range r.Insights {
		fmt.Fprintf(&b, "Insight: %s\n", in.Message)
	}
	return b.String()
}
