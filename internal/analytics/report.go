package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

const (
	// RecentSessionsLimit is the number of sessions appended to a report.
	RecentSessionsLimit = 20

	// MinGameImprovementSessions is the per-game minimum for an improvement percent.
	MinGameImprovementSessions = 2

	trendSignificant = "increases significantly"
	trendStable      = "stable"
)

// Placeholder circadian hours used until enough sessions exist.
const (
	placeholderPeakHour   = 9
	placeholderLowestHour = 15
)

// Clock pins "now" and the local time zone of a report computation.
type Clock struct {
	Now      time.Time
	Location *time.Location
}

func (c Clock) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// BuildReport assembles the period report. sessions and emas are the user's
// complete history; the period filter is applied here. Session EMA links are
// resolved against the complete EMA list so that a check-in recorded just
// before the window still gives context.
func BuildReport(sessions []domain.GameSession, emas []domain.EMA, period domain.ReportPeriod, clock Clock) domain.Report {
	loc := clock.location()
	now := clock.Now.In(loc)
	start := now.AddDate(0, 0, -period.Days())

	periodSessions := sessionsSince(sessions, start)
	periodEMAs := emasSince(emas, start)
	ordered := chronological(periodSessions)
	idx := NewEMAIndex(emas)

	current, longest := Streaks(sessions, now, loc)
	score := Score(periodSessions, current)
	mood := MoodSummary(periodEMAs)
	sleep := SleepSummary(periodEMAs, periodSessions, idx)
	circadian := CircadianSummary(periodSessions, loc)
	errs := ErrorSummary(periodSessions, idx)
	games := PerGameStats(periodSessions)
	weakest := WeakestGame(games)
	fatigued, variability := DetectFatigue(ordered)

	insights := GenerateInsights(CoachingInput{
		Sleep:              sleep,
		Mood:               mood,
		Circadian:          circadian,
		Errors:             errs,
		ImprovementPercent: score.ImprovementPercent,
		WeakestGame:        weakest,
		FatigueDetected:    fatigued,
	})

	return domain.Report{
		GeneratedAt:            now,
		Period:                 period,
		PeriodStart:            start,
		PeriodEnd:              now,
		Timezone:               loc.String(),
		SessionCount:           len(periodSessions),
		EMACount:               len(periodEMAs),
		CurrentStreak:          current,
		LongestStreak:          longest,
		Score:                  score,
		Mood:                   mood,
		Sleep:                  sleep,
		Lifestyle:              LifestyleSummary(periodEMAs),
		SleepImpactTable:       SleepImpactTable(periodSessions, idx),
		Circadian:              circadian,
		Errors:                 errs,
		GameStats:              games,
		WeakestGame:            weakest,
		FatigueDetected:        fatigued,
		HighVariabilityPercent: variability,
		Insights:               insights,
		RecentSessions:         recentSessions(ordered, RecentSessionsLimit),
	}
}

// MoodSummary averages the four mood axes and interprets them.
func MoodSummary(emas []domain.EMA) domain.MoodStats {
	if len(emas) == 0 {
		return domain.MoodStats{Interpretation: "No mood check-ins were recorded in this period."}
	}
	var anger, anxiety, sadness, happiness float64
	for _, e := range emas {
		anger += float64(e.Anger)
		anxiety += float64(e.Anxiety)
		sadness += float64(e.Sadness)
		happiness += float64(e.Happiness)
	}
	n := float64(len(emas))
	stats := domain.MoodStats{
		Entries:      len(emas),
		AvgAnger:     anger / n,
		AvgAnxiety:   anxiety / n,
		AvgSadness:   sadness / n,
		AvgHappiness: happiness / n,
	}
	stats.Interpretation = interpretMood(stats)
	return stats
}

func interpretMood(m domain.MoodStats) string {
	switch {
	case m.AvgHappiness >= 4 && m.AvgAnxiety < 2.5:
		return "Your mood has been positive, with high happiness and low anxiety."
	case m.AvgAnxiety >= 3.5 || m.AvgSadness >= 3.5:
		return "You have reported elevated stress, with high anxiety or sadness."
	case m.AvgHappiness >= 3:
		return "Your mood has been stable and neutral."
	default:
		return "Your mood has been mixed across this period."
	}
}

// SleepSummary describes reported sleep and the score gap between sessions
// after good and poor sleep. The gap has no minimum sample size here; it is
// computed whenever both groups are non-empty.
func SleepSummary(emas []domain.EMA, sessions []domain.GameSession, idx EMAIndex) domain.SleepStats {
	stats := domain.SleepStats{QualityInterpretation: "No sleep data was reported in this period."}
	if len(emas) > 0 {
		hours := make([]float64, len(emas))
		quality := make([]float64, len(emas))
		stats.MinHours, stats.MaxHours = emas[0].SleepHours, emas[0].SleepHours
		for i, e := range emas {
			hours[i] = e.SleepHours
			quality[i] = float64(e.SleepQuality)
			stats.MinHours = math.Min(stats.MinHours, e.SleepHours)
			stats.MaxHours = math.Max(stats.MaxHours, e.SleepHours)
		}
		stats.Entries = len(emas)
		stats.AvgHours = mean(hours)
		stats.AvgQuality = mean(quality)
		stats.QualityInterpretation = interpretSleepQuality(stats.AvgQuality)
	}

	var good, poor []domain.GameSession
	for i := range sessions {
		ema := idx.Lookup(&sessions[i])
		switch {
		case ema == nil:
		case ema.IsTired():
			poor = append(poor, sessions[i])
		default:
			good = append(good, sessions[i])
		}
	}
	if len(good) > 0 && len(poor) > 0 {
		stats.PerformanceImpact = percentDifference(averageScore(good), averageScore(poor))
	}
	return stats
}

func interpretSleepQuality(q float64) string {
	switch {
	case q >= 4:
		return "Good sleep quality."
	case q >= 3:
		return "Fair sleep quality."
	case q >= 2:
		return "Poor sleep quality."
	default:
		return "Very poor sleep quality."
	}
}

// LifestyleSummary returns the share of check-ins reporting caffeine, any
// alcohol and a negative event.
func LifestyleSummary(emas []domain.EMA) domain.LifestyleStats {
	var caffeine, alcohol, negative int
	for _, e := range emas {
		if e.CaffeineRecent {
			caffeine++
		}
		if e.AlcoholUse != domain.AlcoholNone {
			alcohol++
		}
		if e.HasNegativeEvent {
			negative++
		}
	}
	return domain.LifestyleStats{
		CaffeinePercent:      percentOf(caffeine, len(emas)),
		AlcoholPercent:       percentOf(alcohol, len(emas)),
		NegativeEventPercent: percentOf(negative, len(emas)),
	}
}

type sleepBucket struct {
	label    string
	min, max float64
}

var sleepBuckets = []sleepBucket{
	{"<6h", 0, 6},
	{"6-7h", 6, 7},
	{"7-9h", 7, 9},
	{"9h+", 9, math.Inf(1)},
}

// SleepImpactTable buckets EMA-linked sessions by the hours slept before them.
// Every bucket is present, empty ones with zero values.
func SleepImpactTable(sessions []domain.GameSession, idx EMAIndex) []domain.SleepImpactRow {
	accuracies := make([][]float64, len(sleepBuckets))
	for i := range sessions {
		ema := idx.Lookup(&sessions[i])
		if ema == nil {
			continue
		}
		for b, bucket := range sleepBuckets {
			if ema.SleepHours >= bucket.min && ema.SleepHours < bucket.max {
				accuracies[b] = append(accuracies[b], sessions[i].Accuracy)
				break
			}
		}
	}

	rows := make([]domain.SleepImpactRow, len(sleepBuckets))
	for b, bucket := range sleepBuckets {
		row := domain.SleepImpactRow{
			Label:       bucket.label,
			MinHours:    bucket.min,
			AvgAccuracy: mean(accuracies[b]) * 100,
			Sessions:    len(accuracies[b]),
		}
		if !math.IsInf(bucket.max, 1) {
			upper := bucket.max
			row.MaxHours = &upper
		}
		rows[b] = row
	}
	return rows
}

// CircadianSummary finds the local hours with the highest and lowest average
// accuracy. Below MinPeakHourSessions it returns a fixed placeholder.
func CircadianSummary(sessions []domain.GameSession, loc *time.Location) domain.CircadianProfile {
	if len(sessions) < MinPeakHourSessions {
		return domain.CircadianProfile{
			PeakHour:       placeholderPeakHour,
			LowestHour:     placeholderLowestHour,
			Recommendation: "Not enough data yet. Play at least 5 sessions at different times of day to discover your peak hours.",
		}
	}

	var sums [24]float64
	var counts [24]int
	for _, s := range sessions {
		h := localHour(s.Timestamp, loc)
		sums[h] += s.Accuracy
		counts[h]++
	}

	peak, lowest := -1, -1
	var peakAcc, lowestAcc float64
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		avg := sums[h] / float64(counts[h])
		if peak < 0 || avg > peakAcc {
			peak, peakAcc = h, avg
		}
		if lowest < 0 || avg < lowestAcc {
			lowest, lowestAcc = h, avg
		}
	}

	return domain.CircadianProfile{
		HasEnoughData:  true,
		PeakHour:       peak,
		LowestHour:     lowest,
		PeakAccuracy:   peakAcc * 100,
		LowestAccuracy: lowestAcc * 100,
		Recommendation: circadianRecommendation(peak),
	}
}

func circadianRecommendation(peak int) string {
	switch DayPeriodOf(peak) {
	case Morning:
		return "Schedule cognitively demanding work between 6 AM and 12 PM."
	case Afternoon:
		return "Schedule cognitively demanding work between 12 PM and 6 PM."
	default:
		return "Schedule cognitively demanding work in the evening, after 6 PM."
	}
}

// ErrorSummary totals errors and classifies how much of each total falls on
// tired or distressed sessions.
func ErrorSummary(sessions []domain.GameSession, idx EMAIndex) domain.ErrorAnalysis {
	var a domain.ErrorAnalysis
	for _, s := range sessions {
		a.TotalOmissionErrors += s.OmissionErrors
		a.TotalCommissionErrors += s.CommissionErrors
	}
	a.OmissionErrorsWhenTired, a.CommissionErrorsWhenStressed = ErrorCorrelation(sessions, idx)
	a.OmissionTrend = errorTrend(a.OmissionErrorsWhenTired, a.TotalOmissionErrors)
	a.CommissionTrend = errorTrend(a.CommissionErrorsWhenStressed, a.TotalCommissionErrors)
	return a
}

func errorTrend(sub, total int) string {
	if float64(sub) > float64(total)/3.0 {
		return trendSignificant
	}
	return trendStable
}

// PerGameStats returns statistics for each played game in domain.GameTypes order.
func PerGameStats(sessions []domain.GameSession) []domain.GameStats {
	byGame := groupByGame(sessions)
	var stats []domain.GameStats
	for _, gt := range domain.GameTypes {
		group := byGame[gt]
		if len(group) == 0 {
			continue
		}
		gs := domain.GameStats{
			GameType:       gt,
			SessionsPlayed: len(group),
			AvgScore:       averageScore(group),
			AvgAccuracy:    averageAccuracy(group),
		}
		for _, s := range group {
			if s.Score > gs.BestScore {
				gs.BestScore = s.Score
			}
		}
		if len(group) >= MinGameImprovementSessions {
			gs.ImprovementPercent, _ = halfImprovement(chronological(group))
		}
		stats = append(stats, gs)
	}
	return stats
}

// WeakestGame is the game with the lowest average accuracy, nil without stats.
func WeakestGame(stats []domain.GameStats) *domain.GameType {
	var weakest *domain.GameType
	lowest := 0.0
	for _, gs := range stats {
		if weakest == nil || gs.AvgAccuracy < lowest {
			g := gs.GameType
			weakest = &g
			lowest = gs.AvgAccuracy
		}
	}
	return weakest
}

func sessionsSince(sessions []domain.GameSession, start time.Time) []domain.GameSession {
	var out []domain.GameSession
	for _, s := range sessions {
		if !s.Timestamp.Before(start) {
			out = append(out, s)
		}
	}
	return out
}

func emasSince(emas []domain.EMA, start time.Time) []domain.EMA {
	var out []domain.EMA
	for _, e := range emas {
		if !e.Timestamp.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// recentSessions returns up to limit sessions, newest first, from a
// chronologically ordered slice.
func recentSessions(ordered []domain.GameSession, limit int) []domain.GameSession {
	out := make([]domain.GameSession, 0, limit)
	for i := len(ordered) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, ordered[i])
	}
	return out
}
