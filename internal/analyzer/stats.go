// Package analyzer contains the four scoring analyzers operating over
// normalized health data: sleep quality, training readiness, recovery,
// and generic trend/anomaly detection.
//
// All analyzers are pure, stateless and side-effect free. Missing or
// insufficient data never produces an error; each factor degrades to a
// neutral score instead.
package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/trainwell/vitals-api/internal/domain"
)

// NeutralScore is the fallback score used whenever an input is absent or
// below the minimum sample size a factor requires. Shared across all
// analyzers so thresholds cannot drift between them.
const NeutralScore = 50

// clampScore bounds a factor score to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundScore rounds a blended score to the nearest integer after clamping.
func roundScore(v float64) int {
	return int(math.Round(clampScore(v)))
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
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

// populationStdDev computes the population (not sample) standard deviation.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// minuteOfDay extracts minutes after midnight for a timestamp.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// sortSessionsByDay returns a chronologically sorted copy of sessions.
// Inputs are never mutated.
func sortSessionsByDay(sessions []domain.SleepSession) []domain.SleepSession {
	sorted := make([]domain.SleepSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}

// sortHRVByTime returns a chronologically sorted copy of HRV samples.
func sortHRVByTime(samples []domain.HRVSample) []domain.HRVSample {
	sorted := make([]domain.HRVSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// sortActivityByDay returns a chronologically sorted copy of activity days.
func sortActivityByDay(days []domain.DailyActivity) []domain.DailyActivity {
	sorted := make([]domain.DailyActivity, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}

// sortReadinessByDay returns a chronologically sorted copy of readiness days.
func sortReadinessByDay(days []domain.DailyReadiness) []domain.DailyReadiness {
	sorted := make([]domain.DailyReadiness, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}

// sortPointsByDay returns a day-ascending copy of metric points.
func sortPointsByDay(points []domain.MetricPoint) []domain.MetricPoint {
	sorted := make([]domain.MetricPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}
