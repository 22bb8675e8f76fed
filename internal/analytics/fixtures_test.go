package analytics

import (
	"fmt"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

var refNow = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type sessionOpt func(*domain.GameSession)

func withEMA(id string) sessionOpt {
	return func(s *domain.GameSession) { s.EMAID = ptr(id) }
}

func withGame(g domain.GameType) sessionOpt {
	return func(s *domain.GameSession) { s.GameType = g }
}

func withAccuracy(a float64) sessionOpt {
	return func(s *domain.GameSession) { s.Accuracy = a }
}

func withVariability(v float64) sessionOpt {
	return func(s *domain.GameSession) { s.ReactionTimeVariability = ptr(v) }
}

func withErrors(omission, commission int) sessionOpt {
	return func(s *domain.GameSession) {
		s.OmissionErrors = omission
		s.CommissionErrors = commission
	}
}

var sessionSeq int

func session(ts time.Time, score int, opts ...sessionOpt) domain.GameSession {
	sessionSeq++
	s := domain.GameSession{
		ID:              fmt.Sprintf("s-%d", sessionSeq),
		Timestamp:       ts,
		GameType:        domain.GameGoNoGo,
		DifficultyLevel: 1,
		Score:           score,
		Accuracy:        0.8,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func ema(id string, ts time.Time, sleepHours float64) domain.EMA {
	return domain.EMA{
		ID:            id,
		Timestamp:     ts,
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

func hoursAgo(h int) time.Time {
	return refNow.Add(-time.Duration(h) * time.Hour)
}
