package domain

import "time"

// ReportPeriod is the length of a report window in days.
type ReportPeriod int

const (
	PeriodWeek      ReportPeriod = 7
	PeriodFortnight ReportPeriod = 14
	PeriodMonth     ReportPeriod = 30
)

func (p ReportPeriod) Valid() bool {
	switch p {
	case PeriodWeek, PeriodFortnight, PeriodMonth:
		return true
	}
	return false
}

func (p ReportPeriod) Days() int {
	return int(p)
}

// MoodStats averages each mood axis over the period's check-ins.
type MoodStats struct {
	Entries        int     `json:"entries"`
	AvgAnger       float64 `json:"avgAnger"`
	AvgAnxiety     float64 `json:"avgAnxiety"`
	AvgSadness     float64 `json:"avgSadness"`
	AvgHappiness   float64 `json:"avgHappiness"`
	Interpretation string  `json:"interpretation"`
}

// SleepStats summarises sleep reported in the period's check-ins.
type SleepStats struct {
	Entries               int     `json:"entries"`
	AvgHours              float64 `json:"avgHours"`
	MinHours              float64 `json:"minHours"`
	MaxHours              float64 `json:"maxHours"`
	AvgQuality            float64 `json:"avgQuality"`
	QualityInterpretation string  `json:"qualityInterpretation"`
	// Percent by which good-sleep sessions outscore poor-sleep sessions
	PerformanceImpact float64 `json:"performanceImpact"`
}

// LifestyleStats are percentages (0-100) of check-ins reporting each factor.
type LifestyleStats struct {
	CaffeinePercent      float64 `json:"caffeinePercent"`
	AlcoholPercent       float64 `json:"alcoholPercent"`
	NegativeEventPercent float64 `json:"negativeEventPercent"`
}

// SleepImpactRow is one sleep-duration bucket of the sleep impact table.
type SleepImpactRow struct {
	Label    string   `json:"label" example:"7-9h"`
	MinHours float64  `json:"minHours"`
	MaxHours *float64 `json:"maxHours"`
	// Average accuracy x 100
	AvgAccuracy float64 `json:"avgAccuracy"`
	Sessions    int     `json:"sessions"`
}

// CircadianProfile is the time of day at which accuracy peaks and dips.
type CircadianProfile struct {
	HasEnoughData  bool    `json:"hasEnoughData"`
	PeakHour       int     `json:"peakHour"`
	LowestHour     int     `json:"lowestHour"`
	PeakAccuracy   float64 `json:"peakAccuracy"`
	LowestAccuracy float64 `json:"lowestAccuracy"`
	Recommendation string  `json:"recommendation"`
}

// ErrorAnalysis relates error totals to tiredness and distress.
type ErrorAnalysis struct {
	TotalOmissionErrors          int    `json:"totalOmissionErrors"`
	TotalCommissionErrors        int    `json:"totalCommissionErrors"`
	OmissionErrorsWhenTired      int    `json:"omissionErrorsWhenTired"`
	CommissionErrorsWhenStressed int    `json:"commissionErrorsWhenStressed"`
	OmissionTrend                string `json:"omissionTrend"`
	CommissionTrend              string `json:"commissionTrend"`
}

// GameStats are per-game statistics within a period.
type GameStats struct {
	GameType           GameType `json:"gameType"`
	SessionsPlayed     int      `json:"sessionsPlayed"`
	AvgScore           float64  `json:"avgScore"`
	AvgAccuracy        float64  `json:"avgAccuracy"`
	BestScore          int      `json:"bestScore"`
	ImprovementPercent float64  `json:"improvementPercent"`
}

// Report aggregates everything rendered in a period report.
// @Description Aggregated training report for a 7, 14 or 30 day period.
type Report struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Period      ReportPeriod `json:"period" example:"7"`
	PeriodStart time.Time    `json:"periodStart"`
	PeriodEnd   time.Time    `json:"periodEnd"`
	Timezone    string       `json:"timezone"`

	SessionCount  int `json:"sessionCount"`
	EMACount      int `json:"emaCount"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	Score            PerformanceScoreBreakdown `json:"score"`
	Mood             MoodStats                 `json:"mood"`
	Sleep            SleepStats                `json:"sleep"`
	Lifestyle        LifestyleStats            `json:"lifestyle"`
	SleepImpactTable []SleepImpactRow          `json:"sleepImpactTable"`
	Circadian        CircadianProfile          `json:"circadian"`
	Errors           ErrorAnalysis             `json:"errors"`
	GameStats        []GameStats               `json:"gameStats"`
	WeakestGame      *GameType                 `json:"weakestGame"`

	FatigueDetected        bool    `json:"fatigueDetected"`
	HighVariabilityPercent float64 `json:"highVariabilityPercent"`

	Insights []Insight `json:"insights"`
	// Most recent sessions in the period, newest first
	RecentSessions []GameSession `json:"recentSessions"`

	// AI narrative; the fallback text when the text generator failed
	Narrative         string `json:"narrative,omitempty"`
	NarrativeFallback bool   `json:"narrativeFallback,omitempty"`
}
