package analyzer

import (
	"strings"

	"github.com/trainwell/vitals-api/internal/domain"
)

// Factor weights for the recovery blend.
const (
	weightRecoverySleep  = 0.35
	weightHRVTrend       = 0.30
	weightRestingHRTrend = 0.20
	weightStrainBalance  = 0.15
)

const (
	// MinHRVSamplesForTrend is the minimum HRV samples to score at all;
	// below it the HRV trend factor is neutral.
	MinHRVSamplesForTrend = 3

	// MinSessionsForRHRTrend is the minimum sessions with a recorded lowest
	// heart rate needed to score the resting-HR trend.
	MinSessionsForRHRTrend = 3

	// MinActivityDaysForStrain is the minimum activity days needed to score
	// strain balance; the previous window additionally needs 7 days total.
	MinActivityDaysForStrain = 3
	strainWindowDays         = 7
	strainRecentDays         = 3

	hrvTrendBaselineWindow = 14
	hrvTrendRecentWindow   = 3
)

// RecoveryInput carries the optional normalized batches for a recovery
// calculation. Any absent batch degrades its factor to the neutral 50.
type RecoveryInput struct {
	Readiness []domain.DailyReadiness
	Sleep     []domain.SleepSession
	HRV       []domain.HRVSample
	Activity  []domain.DailyActivity
}

// RecoveryAnalyzer blends four factors into a 0-100 recovery score with a
// four-level status.
type RecoveryAnalyzer interface {
	CalculateRecovery(input RecoveryInput) domain.RecoveryScore
}

type recoveryAnalyzer struct{}

// NewRecoveryAnalyzer creates a stateless RecoveryAnalyzer.
func NewRecoveryAnalyzer() RecoveryAnalyzer {
	return &recoveryAnalyzer{}
}

func (a *recoveryAnalyzer) CalculateRecovery(input RecoveryInput) domain.RecoveryScore {
	factors := map[string]int{
		domain.FactorSleep:          scoreRecoverySleep(input.Sleep),
		domain.FactorHRVTrend:       scoreHRVTrend(input.HRV),
		domain.FactorRestingHRTrend: scoreRestingHRTrend(input.Sleep),
		domain.FactorStrainBalance:  scoreStrainBalance(input.Activity),
	}

	score := roundScore(
		float64(factors[domain.FactorSleep])*weightRecoverySleep +
			float64(factors[domain.FactorHRVTrend])*weightHRVTrend +
			float64(factors[domain.FactorRestingHRTrend])*weightRestingHRTrend +
			float64(factors[domain.FactorStrainBalance])*weightStrainBalance)

	status := statusForScore(score)

	return domain.RecoveryScore{
		Score:   score,
		Factors: factors,
		Status:  status,
		Details: recoveryDetails(status, factors),
	}
}

// scoreRecoverySleep scores last night's sleep on a point scale: up to 40
// points for duration, 30 for efficiency and 30 for deep-sleep proportion.
// The tiers differ from SleepAnalyzer's quality score on purpose; the two
// must not be conflated.
func scoreRecoverySleep(sessions []domain.SleepSession) int {
	if len(sessions) == 0 {
		return NeutralScore
	}

	sorted := sortSessionsByDay(sessions)
	last := sorted[len(sorted)-1]

	points := 0.0

	switch hours := last.DurationHours(); {
	case hours >= 8:
		points += 40
	case hours >= 7:
		points += 35
	case hours >= 6:
		points += 25
	case hours >= 5:
		points += 15
	default:
		points += 5
	}

	switch {
	case last.Efficiency >= 92:
		points += 30
	case last.Efficiency >= 87:
		points += 25
	case last.Efficiency >= 82:
		points += 20
	case last.Efficiency >= 75:
		points += 10
	default:
		points += 5
	}

	switch ratio := last.DeepSleepRatio(); {
	case ratio >= 0.22:
		points += 30
	case ratio >= 0.18:
		points += 25
	case ratio >= 0.13:
		points += 18
	case ratio >= 0.08:
		points += 10
	default:
		points += 5
	}

	return roundScore(points)
}

// scoreHRVTrend compares recent HRV against a longer baseline window.
// Short series degrade to absolute-magnitude scoring, then to neutral.
func scoreHRVTrend(samples []domain.HRVSample) int {
	if len(samples) < MinHRVSamplesForTrend {
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
		case avg >= 65:
			return 90
		case avg >= 50:
			return 75
		case avg >= 35:
			return 55
		case avg >= 20:
			return 35
		default:
			return 20
		}
	}

	recentN := hrvTrendRecentWindow
	if recentN > len(values) {
		recentN = len(values)
	}
	baselineN := hrvTrendBaselineWindow
	if baselineN > len(values) {
		baselineN = len(values)
	}

	recent := mean(values[len(values)-recentN:])
	baseline := mean(values[len(values)-baselineN:])
	if baseline == 0 {
		return NeutralScore
	}

	ratio := recent / baseline
	switch {
	case ratio >= 1.10:
		return 95
	case ratio >= 1.0:
		return 80
	case ratio >= 0.90:
		return 65
	case ratio >= 0.80:
		return 45
	default:
		return 25
	}
}

// scoreRestingHRTrend compares the mean of the last 3 recorded lowest
// overnight heart rates to the mean of the whole series. A positive
// difference means the resting HR is dropping, which reads as improving.
func scoreRestingHRTrend(sessions []domain.SleepSession) int {
	sorted := sortSessionsByDay(sessions)

	var values []float64
	for _, s := range sorted {
		if s.LowestHeartRate != nil {
			values = append(values, *s.LowestHeartRate)
		}
	}
	if len(values) < MinSessionsForRHRTrend {
		return NeutralScore
	}

	recent := mean(values[len(values)-3:])
	baseline := mean(values)
	diff := baseline - recent

	switch {
	case diff >= 3:
		return 90
	case diff >= 1:
		return 75
	case diff >= -1:
		return 60
	case diff >= -3:
		return 40
	default:
		return 25
	}
}

// scoreStrainBalance compares the mean strain of the last 3 days to the
// mean of the 4 days before that. With fewer than 7 activity days there is
// no previous window and the factor is neutral.
func scoreStrainBalance(days []domain.DailyActivity) int {
	if len(days) < MinActivityDaysForStrain {
		return NeutralScore
	}

	sorted := sortActivityByDay(days)
	n := len(sorted)
	if n < strainWindowDays {
		return NeutralScore
	}

	var recentScores []float64
	for _, d := range sorted[n-strainRecentDays:] {
		recentScores = append(recentScores, d.Score)
	}
	var previousScores []float64
	for _, d := range sorted[n-strainWindowDays : n-strainRecentDays] {
		previousScores = append(previousScores, d.Score)
	}

	recent := mean(recentScores)
	previous := mean(previousScores)

	switch {
	case recent < previous*0.70:
		return 90
	case recent < previous*0.85:
		return 75
	case recent < previous:
		return 60
	case recent < previous*1.15:
		return 45
	default:
		return 30
	}
}

func statusForScore(score int) domain.RecoveryStatus {
	switch {
	case score >= 80:
		return domain.StatusFullyRecovered
	case score >= 60:
		return domain.StatusMostlyRecovered
	case score >= 40:
		return domain.StatusPartiallyRecovered
	default:
		return domain.StatusNotRecovered
	}
}

func recoveryDetails(status domain.RecoveryStatus, factors map[string]int) string {
	var sb strings.Builder

	switch status {
	case domain.StatusFullyRecovered:
		sb.WriteString("Fully recovered. Your body has absorbed recent training well.")
	case domain.StatusMostlyRecovered:
		sb.WriteString("Mostly recovered. Moderate training is fine.")
	case domain.StatusPartiallyRecovered:
		sb.WriteString("Partially recovered. Keep intensity in check.")
	default:
		sb.WriteString("Not recovered. Give your body time before the next hard session.")
	}

	if factors[domain.FactorSleep] < FactorCalloutThreshold {
		sb.WriteString(" Sleep was insufficient for recovery.")
	}
	if factors[domain.FactorHRVTrend] < FactorCalloutThreshold {
		sb.WriteString(" HRV is trending down.")
	}
	if factors[domain.FactorRestingHRTrend] < FactorCalloutThreshold {
		sb.WriteString(" Resting heart rate is trending up.")
	}

	return sb.String()
}
