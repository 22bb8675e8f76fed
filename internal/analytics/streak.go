package analytics

import (
	"sort"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

// civilDate truncates t to its calendar date in loc. The result is expressed
// in UTC so that subtracting two dates always yields whole days.
func civilDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// SessionDates returns the distinct local calendar dates with at least one
// session, oldest first.
func SessionDates(sessions []domain.GameSession, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(sessions))
	dates := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		d := civilDate(s.Timestamp, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Streaks returns the current and the longest run of consecutive training days.
// The current streak is broken (0) when the last session day is neither today
// nor yesterday in loc.
func Streaks(sessions []domain.GameSession, now time.Time, loc *time.Location) (current, longest int) {
	dates := SessionDates(sessions, loc)
	if len(dates) == 0 {
		return 0, 0
	}

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := civilDate(now, loc)
	last := dates[len(dates)-1]
	if gap := daysBetween(last, today); gap != 0 && gap != 1 {
		return 0, longest
	}
	current = 1
	for i := len(dates) - 1; i > 0; i-- {
		if daysBetween(dates[i-1], dates[i]) != 1 {
			break
		}
		current++
	}
	return current, longest
}

// Profile computes lifetime statistics. Without sessions every field except
// TotalEMAs is zero or nil.
func Profile(sessions []domain.GameSession, emas []domain.EMA, now time.Time, loc *time.Location) domain.ProfileStats {
	stats := domain.ProfileStats{TotalEMAs: len(emas)}
	if len(sessions) == 0 {
		return stats
	}

	stats.TotalSessions = len(sessions)
	stats.CurrentStreak, stats.LongestStreak = Streaks(sessions, now, loc)
	stats.AverageScore = averageScore(sessions)
	stats.FavoriteGame = favoriteGame(sessions)

	first := sessions[0].Timestamp
	for _, s := range sessions[1:] {
		if s.Timestamp.Before(first) {
			first = s.Timestamp
		}
	}
	stats.FirstSessionDate = &first
	return stats
}

// favoriteGame is the most played game; ties go to the earliest in domain.GameTypes.
func favoriteGame(sessions []domain.GameSession) *domain.GameType {
	byGame := groupByGame(sessions)
	var fav *domain.GameType
	most := 0
	for _, gt := range domain.GameTypes {
		if n := len(byGame[gt]); n > most {
			g := gt
			fav = &g
			most = n
		}
	}
	return fav
}
