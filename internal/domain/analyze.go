package domain

import "time"

// HealthBatch is the set of normalized batches an analysis call operates on.
// Every field is optional; absent metrics degrade the affected factors to
// neutral scores instead of failing.
// @Description Normalized health data batches for analysis.
type HealthBatch struct {
	Sleep     []SleepSession    `json:"sleep,omitempty"`
	Readiness []DailyReadiness  `json:"readiness,omitempty"`
	Activity  []DailyActivity   `json:"activity,omitempty"`
	HRV       []HRVSample       `json:"hrv,omitempty"`
	HeartRate []HeartRateSample `json:"heart_rate,omitempty"`
}

// AnalyzeSleepRequest is the request body for sleep analysis.
// @Description Request payload for sleep quality, consistency and debt analysis.
type AnalyzeSleepRequest struct {
	Sessions []SleepSession `json:"sessions" validate:"required,min=1"`
	// Nightly sleep target in minutes (defaults to 480)
	TargetMinutes int `json:"target_minutes,omitempty" validate:"omitempty,min=240,max=720" example:"480"`
}

// SleepAnalysisResponse bundles the three sleep analysis results.
// @Description Combined sleep analysis result.
type SleepAnalysisResponse struct {
	// Quality score for each input session, in input order
	Quality []SleepQualityScore `json:"quality"`
	// Cross-night consistency score (0-100)
	Consistency float64 `json:"consistency" example:"71.3"`
	// Rolling sleep debt analysis
	Debt SleepDebtAnalysis `json:"debt"`
}

// AnalyzeReadinessRequest is the request body for readiness analysis.
// @Description Request payload for training readiness analysis.
type AnalyzeReadinessRequest struct {
	HealthBatch
}

// AnalyzeRecoveryRequest is the request body for recovery analysis.
// @Description Request payload for recovery analysis.
type AnalyzeRecoveryRequest struct {
	HealthBatch
}

// AnalyzeTrendsRequest is the request body for batch trend analysis.
// @Description Request payload for multi-metric trend analysis.
type AnalyzeTrendsRequest struct {
	Metrics []MetricSeries `json:"metrics" validate:"required,min=1,dive"`
	// Nominal analysis period in days (defaults to 14)
	PeriodDays int `json:"period_days,omitempty" validate:"omitempty,min=1,max=365" example:"14"`
}

// AnalyzeAnomaliesRequest is the request body for anomaly detection.
// @Description Request payload for standard-deviation anomaly detection.
type AnalyzeAnomaliesRequest struct {
	Metric string        `json:"metric" validate:"required" example:"resting_hr"`
	Points []MetricPoint `json:"points" validate:"required"`
	// Standard-deviation threshold (defaults to 2)
	StdDevThreshold float64 `json:"std_dev_threshold,omitempty" validate:"omitempty,gt=0" example:"2"`
}

// AnomalyResponse is the response body for anomaly detection.
// @Description Flagged anomalies for one metric.
type AnomalyResponse struct {
	Metric    string    `json:"metric" example:"resting_hr"`
	Anomalies []Anomaly `json:"anomalies"`
}

// AnalysisResult bundles the full analyzer battery over one batch.
// @Description Combined output of all analyzers over one data batch.
type AnalysisResult struct {
	Readiness TrainingReadiness     `json:"readiness"`
	Recovery  RecoveryScore         `json:"recovery"`
	Sleep     SleepAnalysisResponse `json:"sleep"`
}

// AnalyzeInsightsRequest is the request body for LLM-backed insights.
// @Description Request payload for analyzer battery plus LLM insights.
type AnalyzeInsightsRequest struct {
	HealthBatch
	// Nightly sleep target in minutes (defaults to 480)
	TargetMinutes int `json:"target_minutes,omitempty" validate:"omitempty,min=240,max=720" example:"480"`
}

// SyncRequest is the request body for a vendor sync run.
// @Description Request payload for syncing a vendor date range.
type SyncRequest struct {
	Source Source `json:"source" validate:"required,oneof=oura whoop fitbit apple_health withings renpho" example:"oura"`
	// Range start, RFC 3339 (defaults to 14 days before end)
	Start *time.Time `json:"start,omitempty" example:"2024-01-02T00:00:00Z"`
	// Range end, RFC 3339 (defaults to now)
	End *time.Time `json:"end,omitempty" example:"2024-01-16T00:00:00Z"`
}

// SyncResponse is the response body for a vendor sync run.
// @Description Analyzer battery output plus the persisted snapshot.
type SyncResponse struct {
	Snapshot AnalysisSnapshot `json:"snapshot"`
	Analysis AnalysisResult   `json:"analysis"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated training insights.
type LLMInsightsOutput struct {
	// Summary of the current training state (2-3 sentences)
	Summary string `json:"summary" example:"Your recovery is trending up after a heavy week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Analyzer battery output plus LLM-generated insights.
type InsightsResponse struct {
	Analysis AnalysisResult    `json:"analysis"`
	Insights LLMInsightsOutput `json:"insights"`
}
