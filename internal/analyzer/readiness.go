package analyzer

import (
	"sort"
	"strings"

	"github.com/trainwell/vitals-api/internal/domain"
)

// Factor weights for the training readiness blend.
const (
	weightHRVStatus       = 0.25
	weightSleepFactor     = 0.25
	weightRecoveryLevel   = 0.15
	weightRestingHR       = 0.15
	weightActivityBalance = 0.10
	weightSleepDebtFactor = 0.10
)

const (
	// MinHRVSamplesForBaseline is the sample count at which HRV scoring
	// switches from absolute magnitude to a baseline comparison.
	MinHRVSamplesForBaseline = 7

	// MinActivityDaysForBalance is the minimum activity days required to
	// score activity balance.
	MinActivityDaysForBalance = 3

	// MinSessionsForDebtFactor is the minimum sessions required to score
	// the sleep-debt factor; the factor looks at the trailing 7 nights.
	MinSessionsForDebtFactor = 3
	debtFactorWindowNights   = 7

	// RestingHRSampleShare is the share of lowest heart-rate samples
	// averaged as the resting estimate.
	RestingHRSampleShare = 0.05

	// FactorCalloutThreshold is the factor score below which the details
	// text calls the factor out explicitly.
	FactorCalloutThreshold = 40
)

// ReadinessInput carries the optional normalized batches for a readiness
// calculation. Any absent batch degrades its factor to the neutral 50.
type ReadinessInput struct {
	Sleep     []domain.SleepSession
	Readiness []domain.DailyReadiness
	HRV       []domain.HRVSample
	HeartRate []domain.HeartRateSample
	Activity  []domain.DailyActivity
}

// ReadinessAnalyzer blends six factors into a 0-100 training readiness
// score with a four-level recommendation.
type ReadinessAnalyzer interface {
	CalculateTrainingReadiness(input ReadinessInput) domain.TrainingReadiness
}

type readinessAnalyzer struct{}

// NewReadinessAnalyzer creates a stateless ReadinessAnalyzer.
func NewReadinessAnalyzer() ReadinessAnalyzer {
	return &readinessAnalyzer{}
}

func (a *readinessAnalyzer) CalculateTrainingReadiness(input ReadinessInput) domain.TrainingReadiness {
	factors := map[string]int{
		domain.FactorHRVStatus:       scoreHRVStatus(input.HRV),
		domain.FactorSleepQuality:    scoreSleepFactor(input.Sleep),
		domain.FactorRecoveryLevel:   scoreRecoveryLevel(input.Readiness),
		domain.FactorRestingHR:       scoreRestingHR(input.HeartRate),
		domain.FactorActivityBalance: scoreActivityBalance(input.Activity),
		domain.FactorSleepDebt:       scoreSleepDebtFactor(input.Sleep),
	}

	score := roundScore(
		float64(factors[domain.FactorHRVStatus])*weightHRVStatus +
			float64(factors[domain.FactorSleepQuality])*weightSleepFactor +
			float64(factors[domain.FactorRecoveryLevel])*weightRecoveryLevel +
			float64(factors[domain.FactorRestingHR])*weightRestingHR +
			float64(factors[domain.FactorActivityBalance])*weightActivityBalance +
			float64(factors[domain.FactorSleepDebt])*weightSleepDebtFactor)

	recommendation := recommendationForScore(score)

	return domain.TrainingReadiness{
		Score:          score,
		Factors:        factors,
		Recommendation: recommendation,
		Details:        readinessDetails(recommendation, factors),
	}
}

// scoreHRVStatus scores HRV either by absolute magnitude (short series) or
// by comparing the last 3 samples against the preceding baseline.
func scoreHRVStatus(samples []domain.HRVSample) int {
	if len(samples) == 0 {
		return NeutralScore
	}

	sorted := sortHRVByTime(samples)
	values := make([]float64, len(sorted))
	for i, s := range sorted {
		values[i] = s.HRV
	}

	if len(values) < MinHRVSamplesForBaseline {
		avg := mean(values)
		switch {
		case avg >= 60:
			return 90
		case avg >= 40:
			return 70
		case avg >= 25:
			return 50
		default:
			return 30
		}
	}

	recent := mean(values[len(values)-3:])
	baseline := mean(values[:len(values)-3])
	if baseline == 0 {
		return NeutralScore
	}

	ratio := recent / baseline
	switch {
	case ratio >= 1.05:
		return 95
	case ratio >= 0.95:
		return 80
	case ratio >= 0.85:
		return 60
	case ratio >= 0.75:
		return 40
	default:
		return 25
	}
}

// scoreSleepFactor scores last night's sleep from a base of 50 with tiered
// adjustments for duration, efficiency and deep-sleep proportion.
func scoreSleepFactor(sessions []domain.SleepSession) int {
	if len(sessions) == 0 {
		return NeutralScore
	}

	sorted := sortSessionsByDay(sessions)
	last := sorted[len(sorted)-1]

	score := 50.0

	switch hours := last.DurationHours(); {
	case hours >= 7.5:
		score += 20
	case hours >= 7:
		score += 15
	case hours >= 6:
		score += 5
	default:
		score -= 15
	}

	switch {
	case last.Efficiency >= 90:
		score += 20
	case last.Efficiency >= 85:
		score += 15
	case last.Efficiency >= 80:
		score += 5
	default:
		score -= 10
	}

	switch ratio := last.DeepSleepRatio(); {
	case ratio >= 0.20:
		score += 10
	case ratio >= 0.15:
		score += 5
	default:
		score -= 5
	}

	return roundScore(score)
}

// scoreRecoveryLevel uses the most recent platform readiness score verbatim.
func scoreRecoveryLevel(readiness []domain.DailyReadiness) int {
	if len(readiness) == 0 {
		return NeutralScore
	}
	sorted := sortReadinessByDay(readiness)
	return roundScore(sorted[len(sorted)-1].Score)
}

// scoreRestingHR estimates resting heart rate as the average of the lowest
// 5% of samples (at least one) and scores it on fitness tiers.
func scoreRestingHR(samples []domain.HeartRateSample) int {
	if len(samples) == 0 {
		return NeutralScore
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.BPM
	}
	sort.Float64s(values)

	count := int(float64(len(values)) * RestingHRSampleShare)
	if count < 1 {
		count = 1
	}
	resting := mean(values[:count])

	switch {
	case resting <= 50:
		return 95
	case resting <= 55:
		return 85
	case resting <= 60:
		return 75
	case resting <= 65:
		return 65
	case resting <= 70:
		return 55
	default:
		return 40
	}
}

// scoreActivityBalance averages the last 3 activity days. The tiering is
// deliberately non-monotonic: both under- and over-training pull the score
// down, with a sweet spot at 70-85.
func scoreActivityBalance(days []domain.DailyActivity) int {
	if len(days) < MinActivityDaysForBalance {
		return NeutralScore
	}

	sorted := sortActivityByDay(days)
	var recent []float64
	for _, d := range sorted[len(sorted)-3:] {
		recent = append(recent, d.Score)
	}
	avg := mean(recent)

	switch {
	case avg >= 70 && avg <= 85:
		return 90
	case avg >= 60 && avg <= 90:
		return 75
	case avg >= 50:
		return 60
	case avg >= 40:
		return 45
	default:
		return 35
	}
}

// scoreSleepDebtFactor scores the average per-night deficit against an
// 8-hour target over the trailing 7 sessions.
func scoreSleepDebtFactor(sessions []domain.SleepSession) int {
	if len(sessions) < MinSessionsForDebtFactor {
		return NeutralScore
	}

	sorted := sortSessionsByDay(sessions)
	if len(sorted) > debtFactorWindowNights {
		sorted = sorted[len(sorted)-debtFactorWindowNights:]
	}

	var deficits []float64
	for _, s := range sorted {
		deficit := DefaultSleepTargetMinutes - s.DurationMinutes()
		if deficit < 0 {
			deficit = 0
		}
		deficits = append(deficits, deficit)
	}
	avgDeficit := mean(deficits)

	switch {
	case avgDeficit <= 15:
		return 95
	case avgDeficit <= 30:
		return 80
	case avgDeficit <= 60:
		return 60
	case avgDeficit <= 90:
		return 40
	default:
		return 25
	}
}

func recommendationForScore(score int) domain.TrainingRecommendation {
	switch {
	case score >= 80:
		return domain.RecommendationGoHard
	case score >= 60:
		return domain.RecommendationModerate
	case score >= 40:
		return domain.RecommendationEasyDay
	default:
		return domain.RecommendationRest
	}
}

// readinessDetails assembles the recommendation sentence plus a clause for
// each flagged factor. Activity balance and platform recovery are not
// called out in text even when low.
func readinessDetails(rec domain.TrainingRecommendation, factors map[string]int) string {
	var sb strings.Builder

	switch rec {
	case domain.RecommendationGoHard:
		sb.WriteString("You're well recovered and ready for intense training.")
	case domain.RecommendationModerate:
		sb.WriteString("Solid readiness. Train as planned, but listen to your body.")
	case domain.RecommendationEasyDay:
		sb.WriteString("Take it easy today. Light activity will aid recovery.")
	default:
		sb.WriteString("Your body needs rest. Prioritize sleep and recovery.")
	}

	if factors[domain.FactorHRVStatus] < FactorCalloutThreshold {
		sb.WriteString(" HRV is below your baseline.")
	}
	if factors[domain.FactorSleepQuality] < FactorCalloutThreshold {
		sb.WriteString(" Last night's sleep was poor.")
	}
	if factors[domain.FactorSleepDebt] < FactorCalloutThreshold {
		sb.WriteString(" You're carrying significant sleep debt.")
	}
	if factors[domain.FactorRestingHR] < FactorCalloutThreshold {
		sb.WriteString(" Resting heart rate is elevated.")
	}

	return sb.String()
}
