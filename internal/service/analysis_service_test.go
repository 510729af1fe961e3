package service

import (
	"context"
	"testing"
	"time"

	"github.com/trainwell/vitals-api/internal/analyzer"
	"github.com/trainwell/vitals-api/internal/domain"
)

func newAnalysisService() AnalysisService {
	return NewAnalysisService(
		analyzer.NewSleepAnalyzer(),
		analyzer.NewReadinessAnalyzer(),
		analyzer.NewRecoveryAnalyzer(),
		analyzer.NewTrendAnalyzer(),
	)
}

func testSession(day int, hours float64) domain.SleepSession {
	d := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return domain.SleepSession{
		Source:             domain.SourceOura,
		Day:                d,
		BedtimeStart:       d.Add(-1 * time.Hour),
		BedtimeEnd:         d.Add(7 * time.Hour),
		TotalSleepDuration: int(hours * 3600),
		Efficiency:         90,
	}
}

func TestAnalyzeSleep(t *testing.T) {
	svc := newAnalysisService()

	resp, err := svc.AnalyzeSleep(context.Background(), &domain.AnalyzeSleepRequest{
		Sessions: []domain.SleepSession{
			testSession(1, 8),
			testSession(2, 8),
			testSession(3, 8),
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeSleep() error = %v", err)
	}

	if len(resp.Quality) != 3 {
		t.Fatalf("len(Quality) = %d, want 3", len(resp.Quality))
	}
	if resp.Consistency != 100 {
		t.Errorf("Consistency = %v, want 100 for identical schedules", resp.Consistency)
	}
	if resp.Debt.CurrentDebtMinutes != 0 {
		t.Errorf("CurrentDebtMinutes = %v, want 0 at target", resp.Debt.CurrentDebtMinutes)
	}
	if resp.Debt.NightsAnalyzed != 3 {
		t.Errorf("NightsAnalyzed = %d, want 3", resp.Debt.NightsAnalyzed)
	}
}

func TestAnalyzeReadinessEmptyBatch(t *testing.T) {
	svc := newAnalysisService()

	readiness, err := svc.AnalyzeReadiness(context.Background(), &domain.AnalyzeReadinessRequest{})
	if err != nil {
		t.Fatalf("AnalyzeReadiness() error = %v", err)
	}

	if readiness.Score != 50 {
		t.Errorf("Score = %d, want neutral 50 for empty batch", readiness.Score)
	}
	if readiness.Recommendation != domain.RecommendationEasyDay {
		t.Errorf("Recommendation = %v, want easy_day", readiness.Recommendation)
	}
}

func TestAnalyzeTrends(t *testing.T) {
	svc := newAnalysisService()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	trends, err := svc.AnalyzeTrends(context.Background(), &domain.AnalyzeTrendsRequest{
		Metrics: []domain.MetricSeries{
			{Metric: "hrv", Points: []domain.MetricPoint{
				{Day: day(1), Value: 40},
				{Day: day(2), Value: 40},
				{Day: day(3), Value: 50},
				{Day: day(4), Value: 50},
			}},
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeTrends() error = %v", err)
	}

	if len(trends) != 1 {
		t.Fatalf("len(trends) = %d, want 1", len(trends))
	}
	if trends[0].Direction != domain.TrendImproving {
		t.Errorf("Direction = %v, want improving", trends[0].Direction)
	}
}

func TestDetectAnomaliesDefaultsThreshold(t *testing.T) {
	svc := newAnalysisService()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	resp, err := svc.DetectAnomalies(context.Background(), &domain.AnalyzeAnomaliesRequest{
		Metric: "resting_hr",
		Points: []domain.MetricPoint{
			{Day: day(1), Value: 50},
			{Day: day(2), Value: 50},
			{Day: day(3), Value: 50},
		},
	})
	if err != nil {
		t.Fatalf("DetectAnomalies() error = %v", err)
	}

	if resp.Metric != "resting_hr" {
		t.Errorf("Metric = %q, want resting_hr", resp.Metric)
	}
	if resp.Anomalies == nil {
		t.Error("Anomalies = nil, want empty slice")
	}
	if len(resp.Anomalies) != 0 {
		t.Errorf("len(Anomalies) = %d, want 0 below minimum points", len(resp.Anomalies))
	}
}

func TestAnalyzeBatch(t *testing.T) {
	svc := newAnalysisService()

	result, err := svc.AnalyzeBatch(context.Background(), domain.HealthBatch{
		Sleep: []domain.SleepSession{
			testSession(1, 8),
			testSession(2, 8),
			testSession(3, 8),
		},
	}, 480)
	if err != nil {
		t.Fatalf("AnalyzeBatch() error = %v", err)
	}

	if len(result.Sleep.Quality) != 3 {
		t.Errorf("len(Sleep.Quality) = %d, want 3", len(result.Sleep.Quality))
	}
	if result.Readiness.Score == 0 {
		t.Error("Readiness.Score = 0, want a blended score")
	}
	if result.Recovery.Status == "" {
		t.Error("Recovery.Status is empty")
	}
}
