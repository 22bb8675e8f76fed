package render

import (
	"fmt"
	"strings"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Options control terminal rendering.
type Options struct {
	Color bool
}

// Report renders a period report as styled terminal text.
func Report(r *domain.Report, opts Options) string {
	st := newStyles(opts.Color)
	var sb strings.Builder

	title := fmt.Sprintf("Training report: last %d days", r.Period.Days())
	sub := fmt.Sprintf("%s to %s (%s)",
		r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"), r.Timezone)
	sb.WriteString(st.box.Render(st.header.Render(title) + "\n" + st.muted.Render(sub)))
	sb.WriteString("\n\n")

	section(&sb, st, "Performance")
	metric(&sb, st, "Score", scoreStyle(st, r.Score.Total).Render(fmt.Sprintf("%d/100", r.Score.Total)))
	metric(&sb, st, "  Accuracy", fmt.Sprintf("%d pts (%.0f%%)", r.Score.AccuracyPoints, r.Score.AverageAccuracy*100))
	metric(&sb, st, "  Streak", fmt.Sprintf("%d pts", r.Score.StreakPoints))
	metric(&sb, st, "  Improvement", fmt.Sprintf("%d pts (%+.1f%%)", r.Score.ImprovementPoints, r.Score.ImprovementPercent))
	metric(&sb, st, "  Variety", fmt.Sprintf("%d pts (%d games)", r.Score.VarietyPoints, r.Score.GameTypesPlayed))
	metric(&sb, st, "Sessions", fmt.Sprintf("%d", r.SessionCount))
	metric(&sb, st, "Check-ins", fmt.Sprintf("%d", r.EMACount))
	metric(&sb, st, "Streak", fmt.Sprintf("%d days (longest %d)", r.CurrentStreak, r.LongestStreak))
	sb.WriteString("\n")

	if r.Mood.Entries > 0 {
		section(&sb, st, "Mood")
		metric(&sb, st, "Happiness", fmt.Sprintf("%.1f", r.Mood.AvgHappiness))
		metric(&sb, st, "Anxiety", fmt.Sprintf("%.1f", r.Mood.AvgAnxiety))
		metric(&sb, st, "Sadness", fmt.Sprintf("%.1f", r.Mood.AvgSadness))
		metric(&sb, st, "Anger", fmt.Sprintf("%.1f", r.Mood.AvgAnger))
		sb.WriteString(st.muted.Render(r.Mood.Interpretation) + "\n\n")
	}

	if r.Sleep.Entries > 0 {
		section(&sb, st, "Sleep")
		metric(&sb, st, "Average", fmt.Sprintf("%.1fh (%.1f-%.1fh)", r.Sleep.AvgHours, r.Sleep.MinHours, r.Sleep.MaxHours))
		metric(&sb, st, "Quality", fmt.Sprintf("%.1f/5 %s", r.Sleep.AvgQuality, r.Sleep.QualityInterpretation))
		if r.Sleep.PerformanceImpact != 0 {
			metric(&sb, st, "Performance impact", fmt.Sprintf("%+.1f%%", r.Sleep.PerformanceImpact))
		}
		sb.WriteString("\n")

		t := newTable("Sleep", "Sessions", "Accuracy")
		for _, row := range r.SleepImpactTable {
			acc := "-"
			if row.Sessions > 0 {
				acc = fmt.Sprintf("%.0f%%", row.AvgAccuracy)
			}
			t.addRow(row.Label, fmt.Sprintf("%d", row.Sessions), acc)
		}
		sb.WriteString(t.render(st))
		sb.WriteString("\n")
	}

	if len(r.GameStats) > 0 {
		section(&sb, st, "Games")
		t := newTable("Game", "Played", "Avg score", "Accuracy", "Best", "Change")
		for _, g := range r.GameStats {
			t.addRow(
				g.GameType.DisplayName(),
				fmt.Sprintf("%d", g.SessionsPlayed),
				fmt.Sprintf("%.1f", g.AvgScore),
				fmt.Sprintf("%.0f%%", g.AvgAccuracy*100),
				fmt.Sprintf("%d", g.BestScore),
				fmt.Sprintf("%+.1f%%", g.ImprovementPercent),
			)
		}
		sb.WriteString(t.render(st))
		if r.WeakestGame != nil {
			sb.WriteString(st.muted.Render("Weakest: "+r.WeakestGame.DisplayName()) + "\n")
		}
		sb.WriteString("\n")
	}

	if r.Circadian.HasEnoughData {
		section(&sb, st, "Time of day")
		metric(&sb, st, "Peak", fmt.Sprintf("%02d:00 (%.0f%%)", r.Circadian.PeakHour, r.Circadian.PeakAccuracy))
		metric(&sb, st, "Lowest", fmt.Sprintf("%02d:00 (%.0f%%)", r.Circadian.LowestHour, r.Circadian.LowestAccuracy))
		sb.WriteString(st.muted.Render(r.Circadian.Recommendation) + "\n\n")
	}

	if r.FatigueDetected {
		sb.WriteString(st.warn.Render("Fatigue detected in recent sessions") + "\n\n")
	}

	if len(r.Insights) > 0 {
		section(&sb, st, "Insights")
		for _, in := range r.Insights {
			sb.WriteString("  * " + in.Message + "\n")
		}
		sb.WriteString("\n")
	}

	if r.Narrative != "" {
		section(&sb, st, "Coach")
		sb.WriteString(r.Narrative + "\n")
	}

	return sb.String()
}

// ImportResult renders the outcome of a data import.
func ImportResult(res *domain.ImportResult, opts Options) string {
	st := newStyles(opts.Color)
	var sb strings.Builder
	section(&sb, st, "Import")
	metric(&sb, st, "Check-ins imported", fmt.Sprintf("%d", res.EMAsImported))
	metric(&sb, st, "Check-ins skipped", fmt.Sprintf("%d", res.EMAsSkipped))
	metric(&sb, st, "Sessions imported", fmt.Sprintf("%d", res.SessionsImported))
	metric(&sb, st, "Sessions skipped", fmt.Sprintf("%d", res.SessionsSkipped))
	return sb.String()
}

func section(sb *strings.Builder, st styles, name string) {
	sb.WriteString(st.header.Render(name) + "\n")
}

func metric(sb *strings.Builder, st styles, label, value string) {
	sb.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
}

func scoreStyle(st styles, total int) lipgloss.Style {
	switch {
	case total >= 70:
		return st.good
	case total >= 40:
		return st.warn
	default:
		return st.bad
	}
}
