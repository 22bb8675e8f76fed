package analytics

import (
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

const (
	// MinImpactSessions is the minimum number of sessions per partition for the
	// sleep impact and baseline comparisons.
	MinImpactSessions = 3

	// MinPeakHourSessions is the minimum number of sessions for hour-of-day analysis.
	MinPeakHourSessions = 5

	// FatigueWindow is the number of most recent sessions inspected for fatigue.
	FatigueWindow = 10

	// HighVariabilityMs is the reaction-time variability above which a session
	// counts as erratic.
	HighVariabilityMs = 100.0

	// FatigueRatio is the share of erratic sessions above which fatigue is flagged.
	FatigueRatio = 0.40
)

// Summarize computes the all-time analytics summary. It returns nil when there
// are no sessions. Hour-of-day grouping uses loc.
func Summarize(sessions []domain.GameSession, emas []domain.EMA, loc *time.Location) *domain.AnalyticsSummary {
	if len(sessions) == 0 {
		return nil
	}
	idx := NewEMAIndex(emas)

	averages, best := AverageScoreByGame(sessions)
	peakHour, peakScore := PeakPerformanceHour(sessions, loc)
	omissions, commissions := ErrorCorrelation(sessions, idx)
	fatigued, highVariability := DetectFatigue(sessions)

	return &domain.AnalyticsSummary{
		TotalSessions:                len(sessions),
		AverageScoreByGame:           averages,
		BestGame:                     best,
		SleepImpact:                  SleepImpact(sessions, idx),
		BaselineComparison:           BaselineComparison(sessions, idx),
		PeakPerformanceHour:          peakHour,
		PeakPerformanceScore:         peakScore,
		OmissionErrorsWhenTired:      omissions,
		CommissionErrorsWhenStressed: commissions,
		FatigueDetected:              fatigued,
		HighVariabilityPercent:       highVariability,
	}
}

// AverageScoreByGame averages scores per game type. Games are listed in
// domain.GameTypes order and only when played; the best game is the one with the
// highest average, the earliest in that order on ties.
func AverageScoreByGame(sessions []domain.GameSession) ([]domain.GameAverage, *domain.GameType) {
	byGame := groupByGame(sessions)

	var (
		averages []domain.GameAverage
		best     *domain.GameType
		bestAvg  float64
	)
	for _, gt := range domain.GameTypes {
		group := byGame[gt]
		if len(group) == 0 {
			continue
		}
		avg := averageScore(group)
		averages = append(averages, domain.GameAverage{
			GameType:     gt,
			AverageScore: avg,
			Sessions:     len(group),
		})
		if best == nil || avg > bestAvg {
			g := gt
			best = &g
			bestAvg = avg
		}
	}
	return averages, best
}

// SleepImpact compares sessions preceded by at least six hours of sleep with
// those preceded by less. Sessions without a resolvable EMA are ignored.
func SleepImpact(sessions []domain.GameSession, idx EMAIndex) domain.SleepImpactData {
	var good, poor []domain.GameSession
	for i := range sessions {
		ema := idx.Lookup(&sessions[i])
		if ema == nil {
			continue
		}
		if ema.IsTired() {
			poor = append(poor, sessions[i])
		} else {
			good = append(good, sessions[i])
		}
	}

	if len(good) < MinImpactSessions || len(poor) < MinImpactSessions {
		return domain.SleepImpactData{}
	}

	goodAvg := averageScore(good)
	poorAvg := averageScore(poor)
	return domain.SleepImpactData{
		HasEnoughData:         true,
		GoodSleepAvgScore:     goodAvg,
		PoorSleepAvgScore:     poorAvg,
		GoodSleepSessions:     len(good),
		PoorSleepSessions:     len(poor),
		PerformanceDifference: percentDifference(goodAvg, poorAvg),
	}
}

// BaselineComparison compares baseline sessions (no negative event and at least
// six hours of sleep) with stressed sessions (anything else).
func BaselineComparison(sessions []domain.GameSession, idx EMAIndex) domain.BaselineComparisonData {
	var baseline, stressed []domain.GameSession
	for i := range sessions {
		ema := idx.Lookup(&sessions[i])
		if ema == nil {
			continue
		}
		if !ema.HasNegativeEvent && !ema.IsTired() {
			baseline = append(baseline, sessions[i])
		} else {
			stressed = append(stressed, sessions[i])
		}
	}

	if len(baseline) < MinImpactSessions || len(stressed) < MinImpactSessions {
		return domain.BaselineComparisonData{}
	}

	baselineAvg := averageScore(baseline)
	stressedAvg := averageScore(stressed)
	return domain.BaselineComparisonData{
		HasEnoughData:         true,
		BaselineAvgScore:      baselineAvg,
		StressedAvgScore:      stressedAvg,
		BaselineSessions:      len(baseline),
		StressedSessions:      len(stressed),
		PerformanceDifference: percentDifference(baselineAvg, stressedAvg),
	}
}

// PeakPerformanceHour returns the local hour with the highest average score and
// that average. Below MinPeakHourSessions it returns (nil, 0). Ties pick the
// earliest hour.
func PeakPerformanceHour(sessions []domain.GameSession, loc *time.Location) (*int, float64) {
	if len(sessions) < MinPeakHourSessions {
		return nil, 0
	}

	var sums [24]int
	var counts [24]int
	for _, s := range sessions {
		h := localHour(s.Timestamp, loc)
		sums[h] += s.Score
		counts[h]++
	}

	peak := -1
	peakAvg := 0.0
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		avg := float64(sums[h]) / float64(counts[h])
		if peak < 0 || avg > peakAvg {
			peak = h
			peakAvg = avg
		}
	}
	return &peak, peakAvg
}

// ErrorCorrelation sums omission errors of sessions after short sleep and
// commission errors of sessions after elevated anxiety or sadness.
func ErrorCorrelation(sessions []domain.GameSession, idx EMAIndex) (omissionsWhenTired, commissionsWhenStressed int) {
	for i := range sessions {
		ema := idx.Lookup(&sessions[i])
		if ema == nil {
			continue
		}
		if ema.IsTired() {
			omissionsWhenTired += sessions[i].OmissionErrors
		}
		if ema.IsDistressed() {
			commissionsWhenStressed += sessions[i].CommissionErrors
		}
	}
	return omissionsWhenTired, commissionsWhenStressed
}

// DetectFatigue inspects the last FatigueWindow sessions in the given order and
// flags fatigue when more than FatigueRatio of them have erratic reaction times.
// It also returns the erratic share as a percentage.
func DetectFatigue(sessions []domain.GameSession) (bool, float64) {
	if len(sessions) < FatigueWindow {
		return false, 0
	}

	erratic := 0
	for _, s := range sessions[len(sessions)-FatigueWindow:] {
		if s.ReactionTimeVariability != nil && *s.ReactionTimeVariability > HighVariabilityMs {
			erratic++
		}
	}
	ratio := float64(erratic) / float64(FatigueWindow)
	return ratio > FatigueRatio, float64(erratic) * 100 / float64(FatigueWindow)
}

func groupByGame(sessions []domain.GameSession) map[domain.GameType][]domain.GameSession {
	byGame := make(map[domain.GameType][]domain.GameSession)
	for _, s := range sessions {
		byGame[s.GameType] = append(byGame[s.GameType], s)
	}
	return byGame
}

func localHour(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Hour()
}
