package domain

import "time"

// Source identifies the vendor platform a record originated from.
// It is provenance metadata only; scoring logic never branches on it.
// @Description Originating vendor platform for a health record.
type Source string

const (
	SourceOura        Source = "oura"
	SourceWhoop       Source = "whoop"
	SourceFitbit      Source = "fitbit"
	SourceAppleHealth Source = "apple_health"
	SourceWithings    Source = "withings"
	SourceRenpho      Source = "renpho"
)

// DateRange is an optional time window for driver queries.
// Zero-valued bounds mean "unbounded" on that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// SleepSession is a single normalized sleep session.
//
// Stage durations may be partial or absent; TotalSleepDuration need not equal
// the sum of stages. Efficiency is a 0-100 percentage, independent of the
// duration fields.
// @Description Normalized sleep session produced by a vendor adapter.
type SleepSession struct {
	Source Source `json:"source" example:"oura"`
	// Calendar day the session belongs to (the wake-up day)
	Day time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	// Session start and end instants
	BedtimeStart time.Time `json:"bedtime_start" example:"2024-01-15T23:10:00Z"`
	BedtimeEnd   time.Time `json:"bedtime_end" example:"2024-01-16T07:05:00Z"`
	// Durations in seconds
	TotalSleepDuration int `json:"total_sleep_duration" example:"26400"`
	DeepSleepDuration  int `json:"deep_sleep_duration" example:"5400"`
	LightSleepDuration int `json:"light_sleep_duration" example:"14400"`
	REMSleepDuration   int `json:"rem_sleep_duration" example:"6600"`
	AwakeDuration      int `json:"awake_duration" example:"1500"`
	// Sleep efficiency percentage (0-100)
	Efficiency float64 `json:"efficiency" example:"92"`
	// Average overnight HRV in ms, if the vendor reports it
	AverageHRV *float64 `json:"average_hrv,omitempty" example:"48"`
	// Lowest overnight heart rate in bpm, if the vendor reports it
	LowestHeartRate *float64 `json:"lowest_heart_rate,omitempty" example:"46"`
	// Sleep-onset latency in seconds, if the vendor reports it
	Latency *int `json:"latency,omitempty" example:"540"`
}

// DurationHours returns the total sleep duration in hours.
func (s SleepSession) DurationHours() float64 {
	return float64(s.TotalSleepDuration) / 3600.0
}

// DurationMinutes returns the total sleep duration in minutes.
func (s SleepSession) DurationMinutes() float64 {
	return float64(s.TotalSleepDuration) / 60.0
}

// DeepSleepRatio returns the deep-sleep share of total sleep,
// or 0 when total sleep is zero.
func (s SleepSession) DeepSleepRatio() float64 {
	if s.TotalSleepDuration <= 0 {
		return 0
	}
	return float64(s.DeepSleepDuration) / float64(s.TotalSleepDuration)
}

// REMSleepRatio returns the REM share of total sleep,
// or 0 when total sleep is zero.
func (s SleepSession) REMSleepRatio() float64 {
	if s.TotalSleepDuration <= 0 {
		return 0
	}
	return float64(s.REMSleepDuration) / float64(s.TotalSleepDuration)
}

// DailyActivity is one day of normalized activity data.
// One record per calendar day per source.
// @Description Normalized daily activity summary.
type DailyActivity struct {
	Source Source    `json:"source" example:"whoop"`
	Day    time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	// Platform-defined activity/strain score (0-100)
	Score float64 `json:"score" example:"74"`
	Steps int     `json:"steps" example:"10412"`
	// Calories
	ActiveCalories int `json:"active_calories" example:"520"`
	TotalCalories  int `json:"total_calories" example:"2480"`
	// Time in activity-intensity buckets, seconds
	HighActivityTime   int `json:"high_activity_time" example:"1800"`
	MediumActivityTime int `json:"medium_activity_time" example:"3600"`
	LowActivityTime    int `json:"low_activity_time" example:"14400"`
	SedentaryTime      int `json:"sedentary_time" example:"28800"`
}

// ReadinessContributors holds the sparse per-vendor readiness sub-scores.
// Vendors populate only the fields they compute.
// @Description Optional readiness sub-scores reported by the vendor.
type ReadinessContributors struct {
	ActivityBalance     *float64 `json:"activity_balance,omitempty" example:"80"`
	BodyTemperature     *float64 `json:"body_temperature,omitempty" example:"95"`
	HRVBalance          *float64 `json:"hrv_balance,omitempty" example:"72"`
	PreviousDayActivity *float64 `json:"previous_day_activity,omitempty" example:"68"`
	PreviousNight       *float64 `json:"previous_night,omitempty" example:"85"`
	RecoveryIndex       *float64 `json:"recovery_index,omitempty" example:"77"`
	RestingHeartRate    *float64 `json:"resting_heart_rate,omitempty" example:"88"`
	SleepBalance        *float64 `json:"sleep_balance,omitempty" example:"79"`
}

// DailyReadiness is one day of platform-reported readiness/recovery.
// @Description Normalized platform readiness score.
type DailyReadiness struct {
	Source Source    `json:"source" example:"oura"`
	Day    time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	// Platform readiness score (0-100)
	Score float64 `json:"score" example:"82"`
	// Skin temperature deviation from baseline in degrees Celsius
	TemperatureDeviation *float64              `json:"temperature_deviation,omitempty" example:"-0.2"`
	Contributors         ReadinessContributors `json:"contributors"`
}

// HRVSample is a single heart-rate-variability measurement.
// Samples arrive unordered; analyzers sort by timestamp before any
// windowed computation.
// @Description Single HRV measurement in milliseconds.
type HRVSample struct {
	Source    Source    `json:"source" example:"whoop"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T04:30:00Z"`
	// HRV in milliseconds (RMSSD or SDNN depending on vendor)
	HRV float64 `json:"hrv" example:"52"`
}

// HeartRateSample is a single heart-rate measurement.
// @Description Single heart-rate measurement in bpm.
type HeartRateSample struct {
	Source    Source    `json:"source" example:"fitbit"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-16T04:30:00Z"`
	BPM       float64   `json:"bpm" example:"54"`
}

// BodyComposition is one day of normalized body-composition data.
// Every metric is optional; scales differ widely in what they measure.
// @Description Normalized body composition measurement.
type BodyComposition struct {
	Source Source    `json:"source" example:"withings"`
	Day    time.Time `json:"day" example:"2024-01-16T00:00:00Z"`
	// Weight in kilograms
	Weight         *float64 `json:"weight,omitempty" example:"74.5"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" example:"16.2"`
	// Muscle and bone mass in kilograms
	MuscleMass   *float64 `json:"muscle_mass,omitempty" example:"33.1"`
	BoneMass     *float64 `json:"bone_mass,omitempty" example:"3.2"`
	WaterPercent *float64 `json:"water_percent,omitempty" example:"58.4"`
	BMI          *float64 `json:"bmi,omitempty" example:"22.9"`
}
