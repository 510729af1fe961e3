package analyzer

import (
	"time"

	"github.com/trainwell/vitals-api/internal/domain"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// session builds a sleep session for day offset d with the given total
// duration in hours and efficiency percentage.
func session(d int, hours, efficiency float64) domain.SleepSession {
	day := testBase.AddDate(0, 0, d)
	total := int(hours * 3600)
	return domain.SleepSession{
		Source:             domain.SourceOura,
		Day:                day,
		BedtimeStart:       day.Add(-1 * time.Hour),
		BedtimeEnd:         day.Add(7 * time.Hour),
		TotalSleepDuration: total,
		Efficiency:         efficiency,
	}
}

func withDeep(s domain.SleepSession, ratio float64) domain.SleepSession {
	s.DeepSleepDuration = int(float64(s.TotalSleepDuration) * ratio)
	return s
}

func withREM(s domain.SleepSession, ratio float64) domain.SleepSession {
	s.REMSleepDuration = int(float64(s.TotalSleepDuration) * ratio)
	return s
}

func withLatency(s domain.SleepSession, minutes int) domain.SleepSession {
	latency := minutes * 60
	s.Latency = &latency
	return s
}

func withLowestHR(s domain.SleepSession, bpm float64) domain.SleepSession {
	s.LowestHeartRate = &bpm
	return s
}

// hrvSeries builds one sample per day with the given values, oldest first.
func hrvSeries(values ...float64) []domain.HRVSample {
	samples := make([]domain.HRVSample, len(values))
	for i, v := range values {
		samples[i] = domain.HRVSample{
			Source:    domain.SourceWhoop,
			Timestamp: testBase.AddDate(0, 0, i),
			HRV:       v,
		}
	}
	return samples
}

// hrSeries builds heart-rate samples a minute apart with the given values.
func hrSeries(values ...float64) []domain.HeartRateSample {
	samples := make([]domain.HeartRateSample, len(values))
	for i, v := range values {
		samples[i] = domain.HeartRateSample{
			Source:    domain.SourceFitbit,
			Timestamp: testBase.Add(time.Duration(i) * time.Minute),
			BPM:       v,
		}
	}
	return samples
}

// activitySeries builds one activity day per value, oldest first.
func activitySeries(scores ...float64) []domain.DailyActivity {
	days := make([]domain.DailyActivity, len(scores))
	for i, s := range scores {
		days[i] = domain.DailyActivity{
			Source: domain.SourceWhoop,
			Day:    testBase.AddDate(0, 0, i),
			Score:  s,
		}
	}
	return days
}

// readinessSeries builds one readiness day per score, oldest first.
func readinessSeries(scores ...float64) []domain.DailyReadiness {
	days := make([]domain.DailyReadiness, len(scores))
	for i, s := range scores {
		days[i] = domain.DailyReadiness{
			Source: domain.SourceOura,
			Day:    testBase.AddDate(0, 0, i),
			Score:  s,
		}
	}
	return days
}

// points builds one metric point per value, one day apart, oldest first.
func points(values ...float64) []domain.MetricPoint {
	pts := make([]domain.MetricPoint, len(values))
	for i, v := range values {
		pts[i] = domain.MetricPoint{
			Day:   testBase.AddDate(0, 0, i),
			Value: v,
		}
	}
	return pts
}
