package analytics

import (
	"math"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

const (
	maxAccuracyPoints    = 50
	maxStreakPoints      = 20
	maxImprovementPoints = 20
	maxVarietyPoints     = 10

	// MinImprovementSessions is the minimum period size for the improvement component.
	MinImprovementSessions = 4
)

// Score computes the composite 0-100 performance score for the sessions of a
// reporting period. Rounding is half away from zero (math.Round).
func Score(sessions []domain.GameSession, streak int) domain.PerformanceScoreBreakdown {
	if len(sessions) == 0 {
		return domain.PerformanceScoreBreakdown{}
	}

	avgAccuracy := averageAccuracy(sessions)
	improvement, ok := 0.0, false
	if len(sessions) >= MinImprovementSessions {
		improvement, ok = halfImprovement(chronological(sessions))
	}
	played := len(groupByGame(sessions))

	b := domain.PerformanceScoreBreakdown{
		AccuracyPoints:     AccuracyPoints(avgAccuracy),
		StreakPoints:       StreakPoints(streak),
		ImprovementPoints:  ImprovementPoints(improvement, ok),
		VarietyPoints:      VarietyPoints(played),
		ImprovementPercent: improvement,
		AverageAccuracy:    avgAccuracy,
		GameTypesPlayed:    played,
	}
	b.Total = clamp(b.AccuracyPoints+b.StreakPoints+b.ImprovementPoints+b.VarietyPoints, 0, 100)
	return b
}

// AccuracyPoints maps average accuracy in [0,1] to 0-50 points.
func AccuracyPoints(avgAccuracy float64) int {
	return clamp(int(math.Round(avgAccuracy*maxAccuracyPoints)), 0, maxAccuracyPoints)
}

// StreakPoints maps a day streak to 0-20 points using integer division.
func StreakPoints(streak int) int {
	var points int
	switch {
	case streak >= 14:
		points = maxStreakPoints
	case streak >= 7:
		points = 10 + (streak-7)*10/7
	default:
		points = streak * 10 / 7
	}
	return clamp(points, 0, maxStreakPoints)
}

// ImprovementPoints maps the second-half vs first-half score change to 0-20
// points. An undefined change scores nothing.
func ImprovementPoints(percent float64, ok bool) int {
	if !ok {
		return 0
	}
	switch {
	case percent >= 10:
		return maxImprovementPoints
	case percent >= 5:
		return 15
	case percent >= 0:
		return 10
	case percent >= -5:
		return 5
	default:
		return 0
	}
}

// VarietyPoints awards 2.5 points per distinct game played, capped at 10.
func VarietyPoints(distinctGames int) int {
	return int(math.Round(math.Min(float64(distinctGames)*2.5, maxVarietyPoints)))
}
