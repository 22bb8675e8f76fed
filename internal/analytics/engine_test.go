package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

func TestSummarize_NoSessions(t *testing.T) {
	emas := []domain.EMA{ema("e1", hoursAgo(1), 8)}
	assert.Nil(t, Summarize(nil, emas, time.UTC))
	assert.Nil(t, Summarize([]domain.GameSession{}, nil, time.UTC))
}

func TestAverageScoreByGame(t *testing.T) {
	sessions := []domain.GameSession{
		session(hoursAgo(5), 60, withGame(domain.GameVisualSearch)),
		session(hoursAgo(4), 80, withGame(domain.GameVisualSearch)),
		session(hoursAgo(3), 70, withGame(domain.GameGoNoGo)),
		session(hoursAgo(2), 90, withGame(domain.GameSimonSequence)),
	}

	averages, best := AverageScoreByGame(sessions)

	require.Len(t, averages, 3)
	assert.Equal(t, domain.GameGoNoGo, averages[0].GameType)
	assert.Equal(t, domain.GameSimonSequence, averages[1].GameType)
	assert.Equal(t, domain.GameVisualSearch, averages[2].GameType)
	assert.InDelta(t, 70.0, averages[2].AverageScore, 1e-9)
	assert.Equal(t, 2, averages[2].Sessions)
	require.NotNil(t, best)
	assert.Equal(t, domain.GameSimonSequence, *best)
}

func TestAverageScoreByGame_TieResolvesToEnumOrder(t *testing.T) {
	sessions := []domain.GameSession{
		session(hoursAgo(2), 75, withGame(domain.GameVisuospatialGrid)),
		session(hoursAgo(1), 75, withGame(domain.GameSimonSequence)),
	}

	_, best := AverageScoreByGame(sessions)

	require.NotNil(t, best)
	assert.Equal(t, domain.GameSimonSequence, *best)
}

func TestSleepImpact(t *testing.T) {
	emas := []domain.EMA{
		ema("good", hoursAgo(48), 8),
		ema("poor", hoursAgo(24), 5),
	}
	idx := NewEMAIndex(emas)

	tests := []struct {
		name       string
		sessions   []domain.GameSession
		enough     bool
		difference float64
	}{
		{
			name: "two per partition is not enough",
			sessions: []domain.GameSession{
				session(hoursAgo(6), 80, withEMA("good")),
				session(hoursAgo(5), 80, withEMA("good")),
				session(hoursAgo(4), 60, withEMA("poor")),
				session(hoursAgo(3), 60, withEMA("poor")),
			},
		},
		{
			name: "many good but two poor is not enough",
			sessions: []domain.GameSession{
				session(hoursAgo(9), 80, withEMA("good")),
				session(hoursAgo(8), 80, withEMA("good")),
				session(hoursAgo(7), 80, withEMA("good")),
				session(hoursAgo(6), 80, withEMA("good")),
				session(hoursAgo(4), 60, withEMA("poor")),
				session(hoursAgo(3), 60, withEMA("poor")),
			},
		},
		{
			name: "three per partition",
			sessions: []domain.GameSession{
				session(hoursAgo(9), 80, withEMA("good")),
				session(hoursAgo(8), 80, withEMA("good")),
				session(hoursAgo(7), 80, withEMA("good")),
				session(hoursAgo(6), 60, withEMA("poor")),
				session(hoursAgo(5), 60, withEMA("poor")),
				session(hoursAgo(4), 60, withEMA("poor")),
			},
			enough:     true,
			difference: 25,
		},
		{
			name: "unlinked and dangling sessions are ignored",
			sessions: []domain.GameSession{
				session(hoursAgo(9), 80, withEMA("good")),
				session(hoursAgo(8), 80, withEMA("good")),
				session(hoursAgo(7), 10, withEMA("missing")),
				session(hoursAgo(6), 60, withEMA("poor")),
				session(hoursAgo(5), 60, withEMA("poor")),
				session(hoursAgo(4), 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepImpact(tt.sessions, idx)
			assert.Equal(t, tt.enough, got.HasEnoughData)
			assert.InDelta(t, tt.difference, got.PerformanceDifference, 1e-9)
			if !tt.enough {
				assert.Equal(t, domain.SleepImpactData{}, got)
			}
		})
	}
}

func TestSleepImpact_ZeroGoodAverage(t *testing.T) {
	idx := NewEMAIndex([]domain.EMA{ema("good", hoursAgo(48), 7), ema("poor", hoursAgo(24), 4)})
	sessions := []domain.GameSession{
		session(hoursAgo(9), 0, withEMA("good")),
		session(hoursAgo(8), 0, withEMA("good")),
		session(hoursAgo(7), 0, withEMA("good")),
		session(hoursAgo(6), 50, withEMA("poor")),
		session(hoursAgo(5), 50, withEMA("poor")),
		session(hoursAgo(4), 50, withEMA("poor")),
	}

	got := SleepImpact(sessions, idx)

	assert.True(t, got.HasEnoughData)
	assert.Zero(t, got.PerformanceDifference)
}

func TestBaselineComparison(t *testing.T) {
	calm := ema("calm", hoursAgo(72), 8)
	event := ema("event", hoursAgo(48), 8)
	event.HasNegativeEvent = true
	tired := ema("tired", hoursAgo(24), 5.5)
	idx := NewEMAIndex([]domain.EMA{calm, event, tired})

	sessions := []domain.GameSession{
		session(hoursAgo(9), 100, withEMA("calm")),
		session(hoursAgo(8), 100, withEMA("calm")),
		session(hoursAgo(7), 100, withEMA("calm")),
		session(hoursAgo(6), 70, withEMA("event")),
		session(hoursAgo(5), 70, withEMA("tired")),
		session(hoursAgo(4), 70, withEMA("tired")),
	}

	got := BaselineComparison(sessions, idx)

	assert.True(t, got.HasEnoughData)
	assert.Equal(t, 3, got.BaselineSessions)
	assert.Equal(t, 3, got.StressedSessions)
	assert.InDelta(t, 30.0, got.PerformanceDifference, 1e-9)

	got = BaselineComparison(sessions[:5], idx)
	assert.False(t, got.HasEnoughData)
}

func TestPeakPerformanceHour(t *testing.T) {
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	t.Run("five sessions at distinct hours", func(t *testing.T) {
		sessions := []domain.GameSession{
			session(at(8), 60),
			session(at(10), 65),
			session(at(13), 95),
			session(at(16), 70),
			session(at(20), 55),
		}
		hour, value := PeakPerformanceHour(sessions, time.UTC)
		require.NotNil(t, hour)
		assert.Equal(t, 13, *hour)
		assert.InDelta(t, 95.0, value, 1e-9)
	})

	t.Run("below five sessions", func(t *testing.T) {
		sessions := []domain.GameSession{
			session(at(8), 60), session(at(9), 60), session(at(10), 60), session(at(11), 99),
		}
		hour, value := PeakPerformanceHour(sessions, time.UTC)
		assert.Nil(t, hour)
		assert.Zero(t, value)
	})

	t.Run("ties pick the earliest hour", func(t *testing.T) {
		sessions := []domain.GameSession{
			session(at(15), 80), session(at(7), 80), session(at(9), 50), session(at(9), 70), session(at(22), 10),
		}
		hour, value := PeakPerformanceHour(sessions, time.UTC)
		require.NotNil(t, hour)
		assert.Equal(t, 7, *hour)
		assert.InDelta(t, 80.0, value, 1e-9)
	})

	t.Run("hours are local", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		sessions := []domain.GameSession{
			session(at(8), 99), session(at(10), 10), session(at(11), 10), session(at(12), 10), session(at(14), 10),
		}
		hour, _ := PeakPerformanceHour(sessions, loc)
		require.NotNil(t, hour)
		assert.Equal(t, 10, *hour)
	})
}

func TestErrorCorrelation(t *testing.T) {
	stressed := ema("stressed", hoursAgo(30), 8)
	stressed.Anxiety = 4
	sad := ema("sad", hoursAgo(29), 8)
	sad.Sadness = 4
	borderline := ema("borderline", hoursAgo(28), 6)
	borderline.Anxiety = 3
	tiredAndSad := ema("tired-sad", hoursAgo(27), 4)
	tiredAndSad.Sadness = 5
	idx := NewEMAIndex([]domain.EMA{stressed, sad, borderline, tiredAndSad})

	sessions := []domain.GameSession{
		session(hoursAgo(10), 50, withEMA("stressed"), withErrors(7, 2)),
		session(hoursAgo(9), 50, withEMA("sad"), withErrors(1, 3)),
		session(hoursAgo(8), 50, withEMA("borderline"), withErrors(9, 9)),
		session(hoursAgo(7), 50, withEMA("tired-sad"), withErrors(4, 1)),
		session(hoursAgo(6), 50, withErrors(20, 20)),
	}

	omissions, commissions := ErrorCorrelation(sessions, idx)

	assert.Equal(t, 4, omissions)
	assert.Equal(t, 6, commissions)
}

func TestDetectFatigue(t *testing.T) {
	build := func(total, erratic int) []domain.GameSession {
		sessions := make([]domain.GameSession, 0, total)
		for i := 0; i < total; i++ {
			v := 50.0
			if i >= total-erratic {
				v = 150
			}
			sessions = append(sessions, session(hoursAgo(total-i), 70, withVariability(v)))
		}
		return sessions
	}

	tests := []struct {
		name    string
		total   int
		erratic int
		flagged bool
		percent float64
	}{
		{"nine sessions never flag", 9, 9, false, 0},
		{"four of ten is not above the ratio", 10, 4, false, 40},
		{"five of ten", 10, 5, true, 50},
		{"only the last ten count", 15, 3, false, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagged, percent := DetectFatigue(build(tt.total, tt.erratic))
			assert.Equal(t, tt.flagged, flagged)
			assert.InDelta(t, tt.percent, percent, 1e-9)
		})
	}

	t.Run("exactly 100ms is not erratic", func(t *testing.T) {
		sessions := build(10, 0)
		for i := range sessions {
			sessions[i].ReactionTimeVariability = ptr(100.0)
		}
		flagged, percent := DetectFatigue(sessions)
		assert.False(t, flagged)
		assert.Zero(t, percent)
	})
}

func TestSummarize(t *testing.T) {
	emas := []domain.EMA{ema("good", hoursAgo(100), 8), ema("poor", hoursAgo(90), 5)}
	var sessions []domain.GameSession
	for i := 0; i < 3; i++ {
		sessions = append(sessions, session(hoursAgo(80-i), 90, withEMA("good")))
		sessions = append(sessions, session(hoursAgo(70-i), 45, withEMA("poor"), withErrors(2, 0)))
	}

	summary := Summarize(sessions, emas, time.UTC)

	require.NotNil(t, summary)
	assert.Equal(t, 6, summary.TotalSessions)
	assert.True(t, summary.SleepImpact.HasEnoughData)
	assert.InDelta(t, 50.0, summary.SleepImpact.PerformanceDifference, 1e-9)
	assert.True(t, summary.BaselineComparison.HasEnoughData)
	assert.Equal(t, 6, summary.OmissionErrorsWhenTired)
	require.NotNil(t, summary.PeakPerformanceHour)
	assert.False(t, summary.FatigueDetected)
}
