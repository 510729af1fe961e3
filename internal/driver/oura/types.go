package oura

import (
	"time"

	"github.com/trainwell/vitals-api/internal/domain"
)

// Wire types for the Oura v2 REST API. Durations arrive in seconds and
// calendar days as YYYY-MM-DD strings.

const dayFormat = "2006-01-02"

type listEnvelope[T any] struct {
	Data      []T     `json:"data"`
	NextToken *string `json:"next_token"`
}

type sleepRecord struct {
	ID                 string   `json:"id"`
	Day                string   `json:"day"`
	BedtimeStart       string   `json:"bedtime_start"`
	BedtimeEnd         string   `json:"bedtime_end"`
	TotalSleepDuration int      `json:"total_sleep_duration"`
	DeepSleepDuration  int      `json:"deep_sleep_duration"`
	LightSleepDuration int      `json:"light_sleep_duration"`
	REMSleepDuration   int      `json:"rem_sleep_duration"`
	AwakeTime          int      `json:"awake_time"`
	Efficiency         int      `json:"efficiency"`
	Latency            *int     `json:"latency"`
	AverageHRV         *float64 `json:"average_hrv"`
	LowestHeartRate    *float64 `json:"lowest_heart_rate"`
	Type               string   `json:"type"`
}

func (r sleepRecord) toDomain() (domain.SleepSession, error) {
	day, err := time.Parse(dayFormat, r.Day)
	if err != nil {
		return domain.SleepSession{}, err
	}
	start, err := time.Parse(time.RFC3339, r.BedtimeStart)
	if err != nil {
		return domain.SleepSession{}, err
	}
	end, err := time.Parse(time.RFC3339, r.BedtimeEnd)
	if err != nil {
		return domain.SleepSession{}, err
	}

	return domain.SleepSession{
		Source:             domain.SourceOura,
		Day:                day,
		BedtimeStart:       start,
		BedtimeEnd:         end,
		TotalSleepDuration: r.TotalSleepDuration,
		DeepSleepDuration:  r.DeepSleepDuration,
		LightSleepDuration: r.LightSleepDuration,
		REMSleepDuration:   r.REMSleepDuration,
		AwakeDuration:      r.AwakeTime,
		Efficiency:         float64(r.Efficiency),
		AverageHRV:         r.AverageHRV,
		LowestHeartRate:    r.LowestHeartRate,
		Latency:            r.Latency,
	}, nil
}

type activityRecord struct {
	Day                string  `json:"day"`
	Score              float64 `json:"score"`
	Steps              int     `json:"steps"`
	ActiveCalories     int     `json:"active_calories"`
	TotalCalories      int     `json:"total_calories"`
	HighActivityTime   int     `json:"high_activity_time"`
	MediumActivityTime int     `json:"medium_activity_time"`
	LowActivityTime    int     `json:"low_activity_time"`
	SedentaryTime      int     `json:"sedentary_time"`
}

func (r activityRecord) toDomain() (domain.DailyActivity, error) {
	day, err := time.Parse(dayFormat, r.Day)
	if err != nil {
		return domain.DailyActivity{}, err
	}

	return domain.DailyActivity{
		Source:             domain.SourceOura,
		Day:                day,
		Score:              r.Score,
		Steps:              r.Steps,
		ActiveCalories:     r.ActiveCalories,
		TotalCalories:      r.TotalCalories,
		HighActivityTime:   r.HighActivityTime,
		MediumActivityTime: r.MediumActivityTime,
		LowActivityTime:    r.LowActivityTime,
		SedentaryTime:      r.SedentaryTime,
	}, nil
}

type readinessRecord struct {
	Day                  string   `json:"day"`
	Score                float64  `json:"score"`
	TemperatureDeviation *float64 `json:"temperature_deviation"`
	Contributors         struct {
		ActivityBalance     *float64 `json:"activity_balance"`
		BodyTemperature     *float64 `json:"body_temperature"`
		HRVBalance          *float64 `json:"hrv_balance"`
		PreviousDayActivity *float64 `json:"previous_day_activity"`
		PreviousNight       *float64 `json:"previous_night"`
		RecoveryIndex       *float64 `json:"recovery_index"`
		RestingHeartRate    *float64 `json:"resting_heart_rate"`
		SleepBalance        *float64 `json:"sleep_balance"`
	} `json:"contributors"`
}

func (r readinessRecord) toDomain() (domain.DailyReadiness, error) {
	day, err := time.Parse(dayFormat, r.Day)
	if err != nil {
		return domain.DailyReadiness{}, err
	}

	return domain.DailyReadiness{
		Source:               domain.SourceOura,
		Day:                  day,
		Score:                r.Score,
		TemperatureDeviation: r.TemperatureDeviation,
		Contributors: domain.ReadinessContributors{
			ActivityBalance:     r.Contributors.ActivityBalance,
			BodyTemperature:     r.Contributors.BodyTemperature,
			HRVBalance:          r.Contributors.HRVBalance,
			PreviousDayActivity: r.Contributors.PreviousDayActivity,
			PreviousNight:       r.Contributors.PreviousNight,
			RecoveryIndex:       r.Contributors.RecoveryIndex,
			RestingHeartRate:    r.Contributors.RestingHeartRate,
			SleepBalance:        r.Contributors.SleepBalance,
		},
	}, nil
}

type heartRateRecord struct {
	BPM       float64 `json:"bpm"`
	Source    string  `json:"source"`
	Timestamp string  `json:"timestamp"`
}

func (r heartRateRecord) toDomain() (domain.HeartRateSample, error) {
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return domain.HeartRateSample{}, err
	}

	return domain.HeartRateSample{
		Source:    domain.SourceOura,
		Timestamp: ts,
		BPM:       r.BPM,
	}, nil
}
