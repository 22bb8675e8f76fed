package render

import (
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.Report {
	weakest := domain.GameVisualSearch
	upper := 9.0
	return &domain.Report{
		Period:        domain.PeriodWeek,
		PeriodStart:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
		Timezone:      "Europe/Prague",
		SessionCount:  12,
		EMACount:      6,
		CurrentStreak: 4,
		LongestStreak: 6,
		Score: domain.PerformanceScoreBreakdown{
			Total: 73, AccuracyPoints: 50, StreakPoints: 20, VarietyPoints: 3,
			AverageAccuracy: 1, GameTypesPlayed: 1,
		},
		Mood:  domain.MoodStats{Entries: 6, AvgHappiness: 4.2, Interpretation: "Generally positive mood."},
		Sleep: domain.SleepStats{Entries: 6, AvgHours: 7.1, MinHours: 5, MaxHours: 8.5, AvgQuality: 3.8},
		SleepImpactTable: []domain.SleepImpactRow{
			{Label: "<5h", Sessions: 0},
			{Label: "7-9h", MinHours: 7, MaxHours: &upper, AvgAccuracy: 91, Sessions: 8},
		},
		GameStats: []domain.GameStats{
			{GameType: domain.GameGoNoGo, SessionsPlayed: 8, AvgScore: 88.5, AvgAccuracy: 0.92, BestScore: 97},
			{GameType: domain.GameVisualSearch, SessionsPlayed: 4, AvgScore: 61, AvgAccuracy: 0.7, BestScore: 70},
		},
		WeakestGame:     &weakest,
		FatigueDetected: true,
		Insights:        []domain.Insight{{Rule: domain.InsightSleep, Message: "Sleep at least 7 hours."}},
		Narrative:       "Solid week.",
	}
}

func TestReport_PlainText(t *testing.T) {
	out := Report(sampleReport(), Options{})

	for _, want := range []string{
		"Training report: last 7 days",
		"2024-03-09 to 2024-03-15 (Europe/Prague)",
		"73/100",
		"4 days (longest 6)",
		"Go/No-Go",
		"Weakest: Visual Search",
		"7-9h",
		"91%",
		"Fatigue detected",
		"* Sleep at least 7 hours.",
		"Solid week.",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "plain output must not carry ANSI escapes")
}

func TestReport_OmitsEmptySections(t *testing.T) {
	r := &domain.Report{Period: domain.PeriodMonth, Timezone: "UTC"}
	out := Report(r, Options{})

	assert.Contains(t, out, "last 30 days")
	for _, absent := range []string{"Mood", "Sleep", "Games", "Insights", "Coach", "Fatigue"} {
		assert.NotContains(t, out, absent)
	}
}

func TestImportResult(t *testing.T) {
	out := ImportResult(&domain.ImportResult{EMAsImported: 3, EMAsSkipped: 1, SessionsImported: 5}, Options{})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "3")
	assert.Contains(t, lines[3], "5")
}

func TestTable_PadsColumns(t *testing.T) {
	tb := newTable("A", "Long header")
	tb.addRow("value", "x")
	out := tb.render(newStyles(false))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "A      Long header", lines[0])
	assert.Equal(t, "-----  -----------", lines[1])
	assert.Equal(t, "value  x          ", lines[2])
}
