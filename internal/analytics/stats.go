// Package analytics derives statistics, scores and coaching text from EMA
// check-ins and game sessions. Every function is pure: it reads the slices it
// is given and never retains or mutates them.
package analytics

import (
	"sort"

	"github.com/blaisecz/cogni-tracker/internal/domain"
)

// EMAIndex resolves a session's EMA reference. Build it once per computation.
type EMAIndex map[string]*domain.EMA

// NewEMAIndex indexes check-ins by ID.
func NewEMAIndex(emas []domain.EMA) EMAIndex {
	idx := make(EMAIndex, len(emas))
	for i := range emas {
		idx[emas[i].ID] = &emas[i]
	}
	return idx
}

// Lookup returns the EMA linked to the session, or nil when the session has no
// link or the linked EMA is unknown.
func (idx EMAIndex) Lookup(s *domain.GameSession) *domain.EMA {
	if s.EMAID == nil {
		return nil
	}
	return idx[*s.EMAID]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func averageScore(sessions []domain.GameSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sessions {
		sum += s.Score
	}
	return float64(sum) / float64(len(sessions))
}

func averageAccuracy(sessions []domain.GameSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sessions {
		sum += s.Accuracy
	}
	return sum / float64(len(sessions))
}

// percentDifference returns (reference - other) / reference * 100, or 0 when the
// reference average is zero.
func percentDifference(reference, other float64) float64 {
	if reference == 0 {
		return 0
	}
	return (reference - other) / reference * 100
}

// percentChange returns (to - from) / from * 100. ok is false when from is not
// positive and the change is undefined.
func percentChange(from, to float64) (float64, bool) {
	if from <= 0 {
		return 0, false
	}
	return (to - from) / from * 100, true
}

// chronological returns a copy of sessions ordered by timestamp, oldest first.
func chronological(sessions []domain.GameSession) []domain.GameSession {
	sorted := make([]domain.GameSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// halfImprovement splits chronologically sorted sessions into halves (the first
// half gets n/2 sessions) and returns the score change between them.
func halfImprovement(sorted []domain.GameSession) (float64, bool) {
	half := len(sorted) / 2
	if half == 0 {
		return 0, false
	}
	return percentChange(averageScore(sorted[:half]), averageScore(sorted[half:]))
}

func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
