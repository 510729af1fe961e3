package whoop

import (
	"time"

	"github.com/trainwell/vitals-api/internal/domain"
)

// Wire types for the WHOOP developer API v1. Stage durations arrive in
// milliseconds, energy in kilojoules, and strain on WHOOP's 0-21 scale.

const (
	scoreStateScored = "SCORED"

	// maxStrain is the top of WHOOP's strain scale, used to rescale
	// strain onto the 0-100 activity score range.
	maxStrain = 21.0

	kcalPerKilojoule = 0.239006
)

type recordsEnvelope[T any] struct {
	Records   []T     `json:"records"`
	NextToken *string `json:"next_token"`
}

type sleepRecord struct {
	ID         string `json:"id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Nap        bool   `json:"nap"`
	ScoreState string `json:"score_state"`
	Score      struct {
		StageSummary struct {
			TotalInBedTimeMilli         int `json:"total_in_bed_time_milli"`
			TotalAwakeTimeMilli         int `json:"total_awake_time_milli"`
			TotalLightSleepTimeMilli    int `json:"total_light_sleep_time_milli"`
			TotalSlowWaveSleepTimeMilli int `json:"total_slow_wave_sleep_time_milli"`
			TotalRemSleepTimeMilli      int `json:"total_rem_sleep_time_milli"`
		} `json:"stage_summary"`
		SleepEfficiencyPercentage float64 `json:"sleep_efficiency_percentage"`
	} `json:"score"`
}

func (r sleepRecord) toDomain() (domain.SleepSession, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return domain.SleepSession{}, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return domain.SleepSession{}, err
	}

	stages := r.Score.StageSummary
	total := (stages.TotalLightSleepTimeMilli + stages.TotalSlowWaveSleepTimeMilli + stages.TotalRemSleepTimeMilli) / 1000

	return domain.SleepSession{
		Source:             domain.SourceWhoop,
		Day:                dayOf(end),
		BedtimeStart:       start,
		BedtimeEnd:         end,
		TotalSleepDuration: total,
		DeepSleepDuration:  stages.TotalSlowWaveSleepTimeMilli / 1000,
		LightSleepDuration: stages.TotalLightSleepTimeMilli / 1000,
		REMSleepDuration:   stages.TotalRemSleepTimeMilli / 1000,
		AwakeDuration:      stages.TotalAwakeTimeMilli / 1000,
		Efficiency:         r.Score.SleepEfficiencyPercentage,
	}, nil
}

type recoveryRecord struct {
	CycleID    int64  `json:"cycle_id"`
	CreatedAt  string `json:"created_at"`
	ScoreState string `json:"score_state"`
	Score      struct {
		UserCalibrating  bool    `json:"user_calibrating"`
		RecoveryScore    float64 `json:"recovery_score"`
		RestingHeartRate float64 `json:"resting_heart_rate"`
		HRVRmssdMilli    float64 `json:"hrv_rmssd_milli"`
	} `json:"score"`
}

func (r recoveryRecord) toDomain() (domain.DailyReadiness, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.DailyReadiness{}, err
	}

	rhr := r.Score.RestingHeartRate
	return domain.DailyReadiness{
		Source: domain.SourceWhoop,
		Day:    dayOf(createdAt),
		Score:  r.Score.RecoveryScore,
		Contributors: domain.ReadinessContributors{
			RestingHeartRate: &rhr,
		},
	}, nil
}

func (r recoveryRecord) toHRVSample() (domain.HRVSample, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.HRVSample{}, err
	}

	return domain.HRVSample{
		Source:    domain.SourceWhoop,
		Timestamp: createdAt,
		HRV:       r.Score.HRVRmssdMilli,
	}, nil
}

type cycleRecord struct {
	ID         int64  `json:"id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ScoreState string `json:"score_state"`
	Score      struct {
		Strain           float64 `json:"strain"`
		Kilojoule        float64 `json:"kilojoule"`
		AverageHeartRate float64 `json:"average_heart_rate"`
		MaxHeartRate     float64 `json:"max_heart_rate"`
	} `json:"score"`
}

func (r cycleRecord) toDomain() (domain.DailyActivity, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return domain.DailyActivity{}, err
	}

	kcal := int(r.Score.Kilojoule * kcalPerKilojoule)
	return domain.DailyActivity{
		Source:         domain.SourceWhoop,
		Day:            dayOf(start),
		Score:          r.Score.Strain / maxStrain * 100,
		ActiveCalories: kcal,
		TotalCalories:  kcal,
	}, nil
}

type bodyMeasurement struct {
	HeightMeter    float64 `json:"height_meter"`
	WeightKilogram float64 `json:"weight_kilogram"`
}

func (m bodyMeasurement) toDomain(day time.Time) domain.BodyComposition {
	weight := m.WeightKilogram
	comp := domain.BodyComposition{
		Source: domain.SourceWhoop,
		Day:    dayOf(day),
		Weight: &weight,
	}
	if m.HeightMeter > 0 {
		bmi := m.WeightKilogram / (m.HeightMeter * m.HeightMeter)
		comp.BMI = &bmi
	}
	return comp
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
