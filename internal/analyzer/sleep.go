package analyzer

import (
	"math"

	"github.com/trainwell/vitals-api/internal/domain"
)

const (
	// IdealSleepHours is the reference duration for the duration component.
	IdealSleepHours = 8.0

	// DefaultSleepTargetMinutes is the nightly target for sleep-debt analysis.
	DefaultSleepTargetMinutes = 480

	// RecoveryMinutesPerNight is the assumed extra sleep per night when
	// estimating how long it takes to pay off accumulated debt.
	RecoveryMinutesPerNight = 30

	// MinSessionsForConsistency is the minimum number of sessions required
	// to score bedtime/wake-time consistency.
	MinSessionsForConsistency = 3

	// ConsistencyMaxStdMinutes maps to a consistency score of 0; a standard
	// deviation of 0 minutes maps to 100, linearly interpolated between.
	ConsistencyMaxStdMinutes = 120.0

	// DebtTrendThresholdMinutes is the minimum difference between the later
	// and earlier halves of the window to call the debt trend moving.
	DebtTrendThresholdMinutes = 10.0
)

// Component weights for the overall sleep quality score.
const (
	weightDuration    = 0.25
	weightEfficiency  = 0.20
	weightDeepSleep   = 0.20
	weightREMSleep    = 0.15
	weightLatency     = 0.10
	weightConsistency = 0.10
)

// SleepAnalyzer scores sleep sessions on quality, cross-night consistency
// and rolling sleep debt.
type SleepAnalyzer interface {
	// ScoreSleepQuality scores a single session on six weighted dimensions.
	// The consistency component is a placeholder 50 for a session scored in
	// isolation; true consistency needs ScoreSleepConsistency.
	ScoreSleepQuality(session domain.SleepSession) domain.SleepQualityScore

	// ScoreSleepConsistency scores multi-night bedtime/wake-time regularity
	// (0-100). Fewer than 3 sessions returns the neutral 50.
	ScoreSleepConsistency(sessions []domain.SleepSession) float64

	// AnalyzeSleepDebt computes rolling sleep debt against a nightly target
	// in minutes. A non-positive target falls back to the 8-hour default.
	AnalyzeSleepDebt(sessions []domain.SleepSession, targetMinutes int) domain.SleepDebtAnalysis
}

type sleepAnalyzer struct{}

// NewSleepAnalyzer creates a stateless SleepAnalyzer.
func NewSleepAnalyzer() SleepAnalyzer {
	return &sleepAnalyzer{}
}

func (a *sleepAnalyzer) ScoreSleepQuality(session domain.SleepSession) domain.SleepQualityScore {
	duration := scoreDuration(session.DurationHours())
	efficiency := scoreEfficiency(session.Efficiency)
	deep := scoreStageRatio(session.DeepSleepRatio(), session.TotalSleepDuration, 0.20, 0.15, 0.10, 0.05)
	rem := scoreStageRatio(session.REMSleepRatio(), session.TotalSleepDuration, 0.25, 0.20, 0.15, 0.10)
	latency := scoreLatency(session.Latency)

	// Single-session consistency is a placeholder; scoring regularity needs
	// the multi-session method.
	consistency := NeutralScore

	overall := roundScore(
		float64(duration)*weightDuration +
			float64(efficiency)*weightEfficiency +
			float64(deep)*weightDeepSleep +
			float64(rem)*weightREMSleep +
			float64(latency)*weightLatency +
			float64(consistency)*weightConsistency)

	return domain.SleepQualityScore{
		Overall:     overall,
		Duration:    duration,
		Efficiency:  efficiency,
		DeepSleep:   deep,
		REMSleep:    rem,
		Latency:     latency,
		Consistency: consistency,
		Rating:      ratingForScore(overall),
	}
}

func (a *sleepAnalyzer) ScoreSleepConsistency(sessions []domain.SleepSession) float64 {
	if len(sessions) < MinSessionsForConsistency {
		return NeutralScore
	}

	var bedtimes []float64
	var wakeTimes []float64
	for _, s := range sessions {
		bedtimes = append(bedtimes, float64(minuteOfDay(s.BedtimeStart)))
		wakeTimes = append(wakeTimes, float64(minuteOfDay(s.BedtimeEnd)))
	}

	bedtimeScore := consistencyFromStd(populationStdDev(bedtimes))
	wakeScore := consistencyFromStd(populationStdDev(wakeTimes))

	return round2((bedtimeScore + wakeScore) / 2)
}

func (a *sleepAnalyzer) AnalyzeSleepDebt(sessions []domain.SleepSession, targetMinutes int) domain.SleepDebtAnalysis {
	if targetMinutes <= 0 {
		targetMinutes = DefaultSleepTargetMinutes
	}

	result := domain.SleepDebtAnalysis{
		TargetMinutes:  targetMinutes,
		Trend:          domain.SleepDebtStable,
		NightsAnalyzed: len(sessions),
	}
	if len(sessions) == 0 {
		return result
	}

	sorted := sortSessionsByDay(sessions)

	target := float64(targetMinutes)
	totalDebt := 0.0
	var durations []float64
	for _, s := range sorted {
		minutes := s.DurationMinutes()
		durations = append(durations, minutes)
		if deficit := target - minutes; deficit > 0 {
			totalDebt += deficit
		}
	}

	result.CurrentDebtMinutes = round2(totalDebt)
	result.AverageNightlyMinutes = round2(mean(durations))
	result.Trend = debtTrend(durations)
	if totalDebt > 0 {
		result.DaysToRecover = int(math.Ceil(totalDebt / RecoveryMinutesPerNight))
	}

	return result
}

// scoreDuration scores sleep duration by its ratio to the 8-hour ideal.
func scoreDuration(hours float64) int {
	ratio := hours / IdealSleepHours
	switch {
	case ratio >= 0.95 && ratio <= 1.10:
		return 100
	case ratio >= 0.85 && ratio <= 1.20:
		return 80
	case ratio >= 0.75:
		return 60
	case ratio >= 0.60:
		return 40
	default:
		return 20
	}
}

func scoreEfficiency(efficiency float64) int {
	switch {
	case efficiency >= 90:
		return 100
	case efficiency >= 85:
		return 80
	case efficiency >= 80:
		return 60
	case efficiency >= 70:
		return 40
	default:
		return 20
	}
}

// scoreStageRatio scores a sleep-stage proportion against four thresholds.
// A session with zero total sleep scores 0 for the component, not an error.
func scoreStageRatio(ratio float64, totalSleep int, t100, t80, t60, t40 float64) int {
	if totalSleep <= 0 {
		return 0
	}
	switch {
	case ratio >= t100:
		return 100
	case ratio >= t80:
		return 80
	case ratio >= t60:
		return 60
	case ratio >= t40:
		return 40
	default:
		return 20
	}
}

// scoreLatency scores sleep-onset latency; an unreported latency is treated
// as the middle tier rather than penalized.
func scoreLatency(latencySeconds *int) int {
	if latencySeconds == nil {
		return 60
	}
	minutes := float64(*latencySeconds) / 60.0
	switch {
	case minutes <= 15:
		return 100
	case minutes <= 30:
		return 80
	case minutes <= 45:
		return 60
	case minutes <= 60:
		return 40
	default:
		return 20
	}
}

func ratingForScore(score int) domain.SleepRating {
	switch {
	case score >= 85:
		return domain.SleepRatingExcellent
	case score >= 70:
		return domain.SleepRatingGood
	case score >= 50:
		return domain.SleepRatingFair
	default:
		return domain.SleepRatingPoor
	}
}

// consistencyFromStd maps a minute-of-day standard deviation to 0-100:
// 0 minutes is perfectly consistent, 120+ minutes scores 0.
func consistencyFromStd(std float64) float64 {
	if std >= ConsistencyMaxStdMinutes {
		return 0
	}
	return (1 - std/ConsistencyMaxStdMinutes) * 100
}

// debtTrend compares the chronologically later half of nightly durations
// against the earlier half.
func debtTrend(durations []float64) domain.SleepDebtTrend {
	mid := len(durations) / 2
	earlier := durations[:mid]
	later := durations[mid:]
	if len(earlier) == 0 || len(later) == 0 {
		return domain.SleepDebtStable
	}

	diff := mean(later) - mean(earlier)
	switch {
	case diff >= DebtTrendThresholdMinutes:
		return domain.SleepDebtRecovering
	case diff <= -DebtTrendThresholdMinutes:
		return domain.SleepDebtAccumulating
	default:
		return domain.SleepDebtStable
	}
}
