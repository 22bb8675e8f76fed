package analytics

import (
	"fmt"
	"math"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

// MaxInsights caps the number of coaching messages.
const MaxInsights = 6

// CoachingInput carries the derived statistics the coaching rules read.
type CoachingInput struct {
	Sleep              domain.SleepStats
	Mood               domain.MoodStats
	Circadian          domain.CircadianProfile
	Errors             domain.ErrorAnalysis
	ImprovementPercent float64
	WeakestGame        *domain.GameType
	FatigueDetected    bool
}

// CoachingRule produces zero or more insights from the input.
type CoachingRule func(in *CoachingInput) []domain.Insight

// coachingRules run in this order; output preserves it.
var coachingRules = []CoachingRule{
	SleepRule,
	CircadianRule,
	FatigueRule,
	StressRule,
	ImprovementRule,
	WeakestGameRule,
	ErrorPatternRule,
}

// GenerateInsights evaluates every rule in order and keeps the first
// MaxInsights messages.
func GenerateInsights(in CoachingInput) []domain.Insight {
	insights := make([]domain.Insight, 0, MaxInsights)
	for _, rule := range coachingRules {
		insights = append(insights, rule(&in)...)
	}
	if len(insights) > MaxInsights {
		insights = insights[:MaxInsights]
	}
	return insights
}

// SleepRule flags short sleep or reinforces good sleep. A period without
// check-ins has no sleep average, so the rule stays silent instead of reading
// it as zero hours.
func SleepRule(in *CoachingInput) []domain.Insight {
	if in.Sleep.Entries == 0 {
		return nil
	}
	if in.Sleep.AvgHours < domain.BaselineMinSleepHours {
		deficit := int(math.Round((domain.BaselineMinSleepHours - in.Sleep.AvgHours) * 3))
		return single(domain.InsightSleep, fmt.Sprintf(
			"You're averaging %.1f hours of sleep. Getting at least 6 hours could improve your performance by about %d%%.",
			in.Sleep.AvgHours, deficit,
		))
	}
	if in.Sleep.AvgHours >= 7 && in.Sleep.AvgQuality >= 3.5 {
		return single(domain.InsightSleep, fmt.Sprintf(
			"Great sleep habits! %.1f hours of good-quality sleep is supporting your cognitive performance.",
			in.Sleep.AvgHours,
		))
	}
	return nil
}

// CircadianRule names the time of day the user performs best. The fixed
// placeholder profile used below five sessions is not a measured peak and
// produces no message.
func CircadianRule(in *CoachingInput) []domain.Insight {
	if !in.Circadian.HasEnoughData {
		return nil
	}
	hour := FormatHour(in.Circadian.PeakHour)
	var msg string
	switch DayPeriodOf(in.Circadian.PeakHour) {
	case Morning:
		msg = fmt.Sprintf("You're a morning performer: your accuracy peaks around %s. Schedule demanding tasks early in the day.", hour)
	case Afternoon:
		msg = fmt.Sprintf("Your focus peaks in the afternoon around %s. Plan challenging work after lunch.", hour)
	default:
		msg = fmt.Sprintf("You perform best in the evening around %s. Use that window for focused practice.", hour)
	}
	return single(domain.InsightCircadian, msg)
}

// FatigueRule suggests a break when fatigue was detected.
func FatigueRule(in *CoachingInput) []domain.Insight {
	if !in.FatigueDetected {
		return nil
	}
	return single(domain.InsightFatigue,
		"Your reaction times have been inconsistent in recent sessions, a sign of fatigue. Consider taking a short break before your next game.")
}

// StressRule links elevated anxiety or sadness to the sleep performance impact.
func StressRule(in *CoachingInput) []domain.Insight {
	if in.Mood.AvgAnxiety < 3.5 && in.Mood.AvgSadness < 3.5 {
		return nil
	}
	return single(domain.InsightStress, fmt.Sprintf(
		"Elevated stress levels may be affecting your performance by %.1f%%. Try a short breathing exercise before training.",
		math.Abs(in.Sleep.PerformanceImpact),
	))
}

// ImprovementRule praises progress or warns about a decline.
func ImprovementRule(in *CoachingInput) []domain.Insight {
	p := in.ImprovementPercent
	switch {
	case p >= 10:
		return single(domain.InsightImprovement, fmt.Sprintf(
			"Outstanding progress! Your scores improved by %.1f%% over this period.", p))
	case p >= 5:
		return single(domain.InsightImprovement, fmt.Sprintf(
			"Nice work! Your scores are up %.1f%% compared to the start of the period.", p))
	case p < -5:
		return single(domain.InsightImprovement, fmt.Sprintf(
			"Your scores dipped by %.1f%% recently. Rest, sleep and consistent practice can help you bounce back.", math.Abs(p)))
	}
	return nil
}

// WeakestGameRule suggests practising the game with the lowest accuracy.
func WeakestGameRule(in *CoachingInput) []domain.Insight {
	if in.WeakestGame == nil {
		return nil
	}
	return single(domain.InsightWeakestGame, fmt.Sprintf(
		"Focus on %s: it's your lowest-accuracy game and has the most room for growth.",
		in.WeakestGame.DisplayName(),
	))
}

// ErrorPatternRule reminds the user to rest or slow down when errors cluster
// around tiredness or stress.
func ErrorPatternRule(in *CoachingInput) []domain.Insight {
	var insights []domain.Insight
	if in.Errors.OmissionErrorsWhenTired > 3 {
		insights = append(insights, domain.Insight{
			Rule: domain.InsightErrors,
			Message: fmt.Sprintf(
				"You missed %d targets in sessions after short sleep. Rest before training to stay alert.",
				in.Errors.OmissionErrorsWhenTired),
		})
	}
	if in.Errors.CommissionErrorsWhenStressed > 3 {
		insights = append(insights, domain.Insight{
			Rule: domain.InsightErrors,
			Message: fmt.Sprintf(
				"You made %d impulsive responses while feeling stressed. Slow down and respond deliberately.",
				in.Errors.CommissionErrorsWhenStressed),
		})
	}
	return insights
}

func single(rule domain.InsightRule, msg string) []domain.Insight {
	return []domain.Insight{{Rule: rule, Message: msg}}
}

// DayPeriod is a coarse time-of-day bucket.
type DayPeriod string

const (
	Morning   DayPeriod = "morning"
	Afternoon DayPeriod = "afternoon"
	Evening   DayPeriod = "evening"
)

// DayPeriodOf buckets an hour: 06-11 morning, 12-17 afternoon, else evening/night.
func DayPeriodOf(hour int) DayPeriod {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// FormatHour renders an hour of day on a 12-hour clock: 0 is "12 AM", 12 is "12 PM".
func FormatHour(hour int) string {
	h := ((hour % 24) + 24) % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d %s", h12, suffix)
}
