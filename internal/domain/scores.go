package domain

import "time"

// SleepRating classifies an overall sleep quality score.
// @Description Qualitative rating for a sleep quality score.
type SleepRating string

const (
	SleepRatingExcellent SleepRating = "excellent"
	SleepRatingGood      SleepRating = "good"
	SleepRatingFair      SleepRating = "fair"
	SleepRatingPoor      SleepRating = "poor"
)

// SleepQualityScore is the output of sleep quality scoring.
// All component scores are 0-100.
// @Description Sleep quality score with per-component breakdown.
type SleepQualityScore struct {
	// Weighted overall score (0-100)
	Overall int `json:"overall" example:"78"`
	// Component scores (0-100)
	Duration    int `json:"duration" example:"80"`
	Efficiency  int `json:"efficiency" example:"100"`
	DeepSleep   int `json:"deep_sleep" example:"80"`
	REMSleep    int `json:"rem_sleep" example:"60"`
	Latency     int `json:"latency" example:"100"`
	Consistency int `json:"consistency" example:"50"`
	// Qualitative rating
	Rating SleepRating `json:"rating" example:"good"`
}

// SleepDebtTrend classifies the direction of accumulated sleep debt.
// @Description Direction of sleep debt over the analyzed nights.
type SleepDebtTrend string

const (
	SleepDebtRecovering   SleepDebtTrend = "recovering"
	SleepDebtStable       SleepDebtTrend = "stable"
	SleepDebtAccumulating SleepDebtTrend = "accumulating"
)

// SleepDebtAnalysis summarizes cumulative sleep shortfall versus a target.
// @Description Rolling sleep debt analysis.
type SleepDebtAnalysis struct {
	// Cumulative shortfall against the nightly target, minutes
	CurrentDebtMinutes float64 `json:"current_debt_minutes" example:"360"`
	// Simple average nightly sleep duration, minutes
	AverageNightlyMinutes float64 `json:"average_nightly_minutes" example:"402.5"`
	// Nightly target used for the calculation, minutes
	TargetMinutes int `json:"target_minutes" example:"480"`
	// Debt direction over the analyzed nights
	Trend SleepDebtTrend `json:"trend" example:"stable"`
	// Estimated nights to pay off the debt at 30 extra minutes/night
	DaysToRecover int `json:"days_to_recover" example:"12"`
	// Number of sessions analyzed
	NightsAnalyzed int `json:"nights_analyzed" example:"7"`
}

// TrainingRecommendation is the four-level training guidance.
// @Description Training recommendation derived from readiness.
type TrainingRecommendation string

const (
	RecommendationGoHard   TrainingRecommendation = "go_hard"
	RecommendationModerate TrainingRecommendation = "moderate"
	RecommendationEasyDay  TrainingRecommendation = "easy_day"
	RecommendationRest     TrainingRecommendation = "rest"
)

// Readiness factor keys used in TrainingReadiness.Factors.
const (
	FactorHRVStatus       = "hrv_status"
	FactorSleepQuality    = "sleep_quality"
	FactorRecoveryLevel   = "recovery_level"
	FactorRestingHR       = "resting_hr"
	FactorActivityBalance = "activity_balance"
	FactorSleepDebt       = "sleep_debt"
)

// TrainingReadiness is the blended training-readiness result.
// @Description Training readiness score with factor breakdown.
type TrainingReadiness struct {
	// Weighted overall score (0-100)
	Score int `json:"score" example:"72"`
	// Per-factor scores (0-100), keyed by factor name
	Factors map[string]int `json:"factors"`
	// Four-level training recommendation
	Recommendation TrainingRecommendation `json:"recommendation" example:"moderate"`
	// Human-readable summary of the recommendation
	Details string `json:"details" example:"Solid readiness. Train as planned."`
}

// RecoveryStatus is the four-level recovery classification.
// @Description Recovery status classification.
type RecoveryStatus string

const (
	StatusFullyRecovered     RecoveryStatus = "fully_recovered"
	StatusMostlyRecovered    RecoveryStatus = "mostly_recovered"
	StatusPartiallyRecovered RecoveryStatus = "partially_recovered"
	StatusNotRecovered       RecoveryStatus = "not_recovered"
)

// Recovery factor keys used in RecoveryScore.Factors.
const (
	FactorSleep          = "sleep"
	FactorHRVTrend       = "hrv_trend"
	FactorRestingHRTrend = "resting_hr_trend"
	FactorStrainBalance  = "strain_balance"
)

// RecoveryScore is the blended recovery result.
// @Description Recovery score with factor breakdown.
type RecoveryScore struct {
	// Weighted overall score (0-100)
	Score int `json:"score" example:"64"`
	// Per-factor scores (0-100), keyed by factor name
	Factors map[string]int `json:"factors"`
	// Four-level recovery status
	Status RecoveryStatus `json:"status" example:"mostly_recovered"`
	// Human-readable summary of the status
	Details string `json:"details" example:"Mostly recovered. Moderate training is fine."`
}

// TrendDirection classifies a metric's movement between two half-windows.
// @Description Direction of a metric trend.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// MetricPoint is a single (day, value) observation in a metric series.
// @Description Single observation of a daily metric.
type MetricPoint struct {
	Day   time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	Value float64   `json:"value" example:"52.4"`
}

// MetricSeries is a named series of metric points.
// @Description Named metric series for batch trend analysis.
type MetricSeries struct {
	Metric string        `json:"metric" example:"hrv" validate:"required"`
	Points []MetricPoint `json:"points"`
}

// HealthTrend compares the recent half of a series against the previous half.
// Stateless; recomputed from scratch each call.
// @Description Trend analysis result for one metric.
type HealthTrend struct {
	Metric    string         `json:"metric" example:"hrv"`
	Direction TrendDirection `json:"direction" example:"improving"`
	// Average of the recent half, rounded to 2 decimals
	CurrentAverage float64 `json:"current_average" example:"54.2"`
	// Average of the previous half, rounded to 2 decimals
	PreviousAverage float64 `json:"previous_average" example:"49.8"`
	// Signed percent change between the halves (unbounded)
	PercentChange float64 `json:"percent_change" example:"8.84"`
	// Number of points analyzed
	DataPoints int `json:"data_points" example:"14"`
	// Nominal analysis period in days
	PeriodDays int `json:"period_days" example:"14"`
}

// Anomaly is a point flagged by standard-deviation anomaly detection.
// Deviation is signed so callers can distinguish high from low outliers.
// @Description Point flagged as a statistical anomaly.
type Anomaly struct {
	Day   time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	Value float64   `json:"value" example:"31"`
	// Signed deviation from the series mean, in standard deviations
	Deviation float64 `json:"deviation" example:"-2.31"`
}
