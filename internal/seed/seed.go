// Package seed fills the store with demo users and a few weeks of check-ins
// and game sessions.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Days is the number of days of history generated per demo user.
const Days = 40

// Users are the demo accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

// Result counts what one Run appended.
type Result struct {
	Users    int
	EMAs     int
	Sessions int
}

// Run seeds the demo users. Record IDs are deterministic per user and day, so
// running it again only appends days that were not seeded yet.
func Run(ctx context.Context, users repository.UserRepository, emas repository.EMARepository, sessions repository.SessionRepository, log *zap.Logger) (Result, error) {
	var res Result
	now := time.Now().UTC()

	for i := range Users {
		user := Users[i]
		if err := users.Ensure(ctx, &user); err != nil {
			return res, fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		res.Users++

		rng := rand.New(rand.NewSource(int64(i + 1)))
		genEMAs, genSessions := Generate(user, Days, now, rng)

		n, err := emas.Import(ctx, genEMAs)
		if err != nil {
			return res, fmt.Errorf("failed to seed check-ins for %s: %w", user.ID, err)
		}
		res.EMAs += n

		n, err = sessions.Import(ctx, genSessions)
		if err != nil {
			return res, fmt.Errorf("failed to seed sessions for %s: %w", user.ID, err)
		}
		res.Sessions += n
	}

	log.Info("seed completed",
		zap.Int("users", res.Users),
		zap.Int("emas", res.EMAs),
		zap.Int("sessions", res.Sessions),
	)
	return res, nil
}

// Generate builds days of history ending at now for user. Each day has one
// morning check-in followed by one to three sessions linked to it. Scores
// drop after short nights and stressful days.
func Generate(user domain.User, days int, now time.Time, rng *rand.Rand) ([]domain.EMA, []domain.GameSession) {
	loc := user.Location()
	emas := make([]domain.EMA, 0, days)
	sessions := make([]domain.GameSession, 0, days*2)

	for i := days - 1; i >= 0; i-- {
		day := now.In(loc).AddDate(0, 0, -i)
		checkIn := time.Date(day.Year(), day.Month(), day.Day(), 7+rng.Intn(12), rng.Intn(60), 0, 0, loc).UTC()
		if checkIn.After(now) {
			continue
		}
		dayKey := checkIn.In(loc).Format("20060102")

		ema := domain.EMA{
			ID:                   fmt.Sprintf("seed-ema-%s-%s", user.ID, dayKey),
			UserID:               user.ID,
			Timestamp:            checkIn,
			Anger:                1 + rng.Intn(3),
			Anxiety:              1 + rng.Intn(5),
			Sadness:              1 + rng.Intn(4),
			Happiness:            2 + rng.Intn(4),
			RecentStressfulEvent: rng.Float64() < 0.25,
			SleepHours:           math.Round((4.5+rng.Float64()*4.5)*2) / 2,
			SleepQuality:         1 + rng.Intn(5),
			CaffeineRecent:       rng.Float64() < 0.5,
			AlcoholUse:           pickAlcohol(rng),
			SubstanceType:        domain.SubstanceNone,
		}
		emas = append(emas, ema)

		penalty := 0.0
		if ema.IsTired() {
			penalty += 0.15
		}
		if ema.RecentStressfulEvent {
			penalty += 0.1
		}

		emaID := ema.ID
		count := 1 + rng.Intn(3)
		for j := 0; j < count; j++ {
			at := checkIn.Add(time.Duration(5+j*10+rng.Intn(5)) * time.Minute)
			if at.After(now) {
				break
			}
			accuracy := clamp(0.95-penalty-rng.Float64()*0.2, 0.3, 1)
			rt := 350 + rng.Intn(200) + int(penalty*400)
			rtv := 30 + rng.Float64()*50 + penalty*100
			sessions = append(sessions, domain.GameSession{
				ID:                      fmt.Sprintf("seed-session-%s-%s-%d", user.ID, dayKey, j),
				UserID:                  user.ID,
				Timestamp:               at,
				GameType:                domain.GameTypes[rng.Intn(len(domain.GameTypes))],
				DifficultyLevel:         1 + rng.Intn(3),
				Score:                   int(math.Round(accuracy * 100)),
				Accuracy:                math.Round(accuracy*100) / 100,
				ReactionTimeMs:          &rt,
				ReactionTimeVariability: &rtv,
				OmissionErrors:          rng.Intn(3) + int(penalty*10),
				CommissionErrors:        rng.Intn(3),
				EMAID:                   &emaID,
				IsBaselineSession:       ema.IsBaseline(),
			})
		}
	}
	return emas, sessions
}

func pickAlcohol(rng *rand.Rand) domain.AlcoholUse {
	switch r := rng.Float64(); {
	case r < 0.7:
		return domain.AlcoholNone
	case r < 0.85:
		return domain.AlcoholSmall
	case r < 0.95:
		return domain.AlcoholModerate
	default:
		return domain.AlcoholHigh
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
