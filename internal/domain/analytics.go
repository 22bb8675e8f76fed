package domain

import "time"

// GameAverage is the average score for a single game type.
type GameAverage struct {
	GameType     GameType `json:"gameType" example:"GO_NO_GO"`
	AverageScore float64  `json:"averageScore" example:"78.5"`
	Sessions     int      `json:"sessions" example:"12"`
}

// SleepImpactData compares performance after good (>= 6h) and poor sleep.
// @Description Good vs poor sleep performance comparison.
type SleepImpactData struct {
	HasEnoughData     bool    `json:"hasEnoughData"`
	GoodSleepAvgScore float64 `json:"goodSleepAvgScore"`
	PoorSleepAvgScore float64 `json:"poorSleepAvgScore"`
	GoodSleepSessions int     `json:"goodSleepSessions"`
	PoorSleepSessions int     `json:"poorSleepSessions"`
	// (good - poor) / good * 100; positive means good sleep outperforms
	PerformanceDifference float64 `json:"performanceDifference"`
}

// BaselineComparisonData compares baseline sessions with stressed sessions.
// @Description Baseline vs stressed performance comparison.
type BaselineComparisonData struct {
	HasEnoughData    bool    `json:"hasEnoughData"`
	BaselineAvgScore float64 `json:"baselineAvgScore"`
	StressedAvgScore float64 `json:"stressedAvgScore"`
	BaselineSessions int     `json:"baselineSessions"`
	StressedSessions int     `json:"stressedSessions"`
	// (baseline - stressed) / baseline * 100
	PerformanceDifference float64 `json:"performanceDifference"`
}

// AnalyticsSummary is the all-time analytics over every session and EMA.
// @Description All-time analytics summary.
type AnalyticsSummary struct {
	TotalSessions      int                    `json:"totalSessions"`
	AverageScoreByGame []GameAverage          `json:"averageScoreByGame"`
	BestGame           *GameType              `json:"bestGame"`
	SleepImpact        SleepImpactData        `json:"sleepImpact"`
	BaselineComparison BaselineComparisonData `json:"baselineComparison"`
	// Local hour (0-23) with the highest average score; null below 5 sessions
	PeakPerformanceHour  *int    `json:"peakPerformanceHour"`
	PeakPerformanceScore float64 `json:"peakPerformanceScore"`
	// Omission errors in sessions preceded by less than 6h of sleep
	OmissionErrorsWhenTired int `json:"omissionErrorsWhenTired"`
	// Commission errors in sessions preceded by anxiety or sadness >= 4
	CommissionErrorsWhenStressed int     `json:"commissionErrorsWhenStressed"`
	FatigueDetected              bool    `json:"fatigueDetected"`
	HighVariabilityPercent       float64 `json:"highVariabilityPercent"`
}

// AnalyticsResponse wraps a summary that is null when no sessions exist.
type AnalyticsResponse struct {
	Summary *AnalyticsSummary `json:"summary"`
}

// PerformanceScoreBreakdown is the composite 0-100 performance score.
// @Description Composite performance score and its components.
type PerformanceScoreBreakdown struct {
	Total              int     `json:"total" example:"73"`
	AccuracyPoints     int     `json:"accuracyPoints" example:"50"`
	StreakPoints       int     `json:"streakPoints" example:"20"`
	ImprovementPoints  int     `json:"improvementPoints" example:"0"`
	VarietyPoints      int     `json:"varietyPoints" example:"3"`
	ImprovementPercent float64 `json:"improvementPercent" example:"0"`
	AverageAccuracy    float64 `json:"averageAccuracy" example:"1"`
	GameTypesPlayed    int     `json:"gameTypesPlayed" example:"1"`
}

// ProfileStats aggregates lifetime statistics.
// @Description Lifetime profile statistics.
type ProfileStats struct {
	TotalSessions    int        `json:"totalSessions"`
	TotalEMAs        int        `json:"totalEmas"`
	CurrentStreak    int        `json:"currentStreak"`
	LongestStreak    int        `json:"longestStreak"`
	AverageScore     float64    `json:"averageScore"`
	FavoriteGame     *GameType  `json:"favoriteGame"`
	FirstSessionDate *time.Time `json:"firstSessionDate"`
}

// InsightRule identifies the coaching rule that produced an insight.
type InsightRule string

const (
	InsightSleep       InsightRule = "sleep"
	InsightCircadian   InsightRule = "circadian"
	InsightFatigue     InsightRule = "fatigue"
	InsightStress      InsightRule = "stress"
	InsightImprovement InsightRule = "improvement"
	InsightWeakestGame InsightRule = "weakest_game"
	InsightErrors      InsightRule = "errors"
)

// Insight is one natural-language coaching message.
type Insight struct {
	Rule    InsightRule `json:"rule" example:"sleep"`
	Message string      `json:"message"`
}
