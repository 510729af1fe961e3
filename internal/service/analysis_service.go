package service

import (
	"context"
	"encoding/json"

	"github.com/trainwell/vitals-api/internal/analyzer"
	"github.com/trainwell/vitals-api/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalysisService runs the analyzer battery over normalized health batches.
// It is stateless; callers supply the data with every request.
type AnalysisService interface {
	// AnalyzeSleep scores every session and computes consistency and debt.
	AnalyzeSleep(ctx context.Context, req *domain.AnalyzeSleepRequest) (*domain.SleepAnalysisResponse, error)
	// AnalyzeReadiness computes a training readiness score.
	AnalyzeReadiness(ctx context.Context, req *domain.AnalyzeReadinessRequest) (*domain.TrainingReadiness, error)
	// AnalyzeRecovery computes a recovery score.
	AnalyzeRecovery(ctx context.Context, req *domain.AnalyzeRecoveryRequest) (*domain.RecoveryScore, error)
	// AnalyzeTrends runs trend analysis over multiple metric series.
	AnalyzeTrends(ctx context.Context, req *domain.AnalyzeTrendsRequest) ([]domain.HealthTrend, error)
	// DetectAnomalies flags outlier points in a metric series.
	DetectAnomalies(ctx context.Context, req *domain.AnalyzeAnomaliesRequest) (*domain.AnomalyResponse, error)
	// AnalyzeBatch runs readiness, recovery and sleep analysis over one batch.
	AnalyzeBatch(ctx context.Context, batch domain.HealthBatch, targetMinutes int) (*domain.AnalysisResult, error)
}

type analysisService struct {
	sleep     analyzer.SleepAnalyzer
	readiness analyzer.ReadinessAnalyzer
	recovery  analyzer.RecoveryAnalyzer
	trend     analyzer.TrendAnalyzer
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	sleep analyzer.SleepAnalyzer,
	readiness analyzer.ReadinessAnalyzer,
	recovery analyzer.RecoveryAnalyzer,
	trend analyzer.TrendAnalyzer,
) AnalysisService {
	return &analysisService{
		sleep:     sleep,
		readiness: readiness,
		recovery:  recovery,
		trend:     trend,
	}
}

func (s *analysisService) AnalyzeSleep(ctx context.Context, req *domain.AnalyzeSleepRequest) (*domain.SleepAnalysisResponse, error) {
	_, span := analysisTracer().Start(ctx, "AnalysisService.AnalyzeSleep",
		trace.WithAttributes(
			attribute.Int("sleep.sessions", len(req.Sessions)),
			attribute.Int("sleep.target_minutes", req.TargetMinutes),
		),
	)
	defer span.End()

	response := &domain.SleepAnalysisResponse{
		Quality:     make([]domain.SleepQualityScore, len(req.Sessions)),
		Consistency: s.sleep.ScoreSleepConsistency(req.Sessions),
		Debt:        s.sleep.AnalyzeSleepDebt(req.Sessions, req.TargetMinutes),
	}
	for i, session := range req.Sessions {
		response.Quality[i] = s.sleep.ScoreSleepQuality(session)
	}

	attachOutput(span, response)
	return response, nil
}

func (s *analysisService) AnalyzeReadiness(ctx context.Context, req *domain.AnalyzeReadinessRequest) (*domain.TrainingReadiness, error) {
	_, span := analysisTracer().Start(ctx, "AnalysisService.AnalyzeReadiness",
		trace.WithAttributes(batchAttributes(req.HealthBatch)...),
	)
	defer span.End()

	readiness := s.readiness.CalculateTrainingReadiness(analyzer.ReadinessInput{
		Sleep:     req.Sleep,
		Readiness: req.Readiness,
		HRV:       req.HRV,
		HeartRate: req.HeartRate,
		Activity:  req.Activity,
	})

	span.SetAttributes(
		attribute.Int("readiness.score", readiness.Score),
		attribute.String("readiness.recommendation", string(readiness.Recommendation)),
	)
	return &readiness, nil
}

func (s *analysisService) AnalyzeRecovery(ctx context.Context, req *domain.AnalyzeRecoveryRequest) (*domain.RecoveryScore, error) {
	_, span := analysisTracer().Start(ctx, "AnalysisService.AnalyzeRecovery",
		trace.WithAttributes(batchAttributes(req.HealthBatch)...),
	)
	defer span.End()

	recovery := s.recovery.CalculateRecovery(analyzer.RecoveryInput{
		Readiness: req.Readiness,
		Sleep:     req.Sleep,
		HRV:       req.HRV,
		Activity:  req.Activity,
	})

	span.SetAttributes(
		attribute.Int("recovery.score", recovery.Score),
		attribute.String("recovery.status", string(recovery.Status)),
	)
	return &recovery, nil
}

func (s *analysisService) AnalyzeTrends(ctx context.Context, req *domain.AnalyzeTrendsRequest) ([]domain.HealthTrend, error) {
	_, span := analysisTracer().Start(ctx, "AnalysisService.AnalyzeTrends",
		trace.WithAttributes(
			attribute.Int("trends.metrics", len(req.Metrics)),
			attribute.Int("trends.period_days", req.PeriodDays),
		),
	)
	defer span.End()

	return s.trend.AnalyzeMultipleMetrics(req.Metrics, req.PeriodDays), nil
}

func (s *analysisService) DetectAnomalies(ctx context.Context, req *domain.AnalyzeAnomaliesRequest) (*domain.AnomalyResponse, error) {
	_, span := analysisTracer().Start(ctx, "AnalysisService.DetectAnomalies",
		trace.WithAttributes(
			attribute.String("anomalies.metric", req.Metric),
			attribute.Int("anomalies.points", len(req.Points)),
		),
	)
	defer span.End()

	threshold := req.StdDevThreshold
	if threshold <= 0 {
		threshold = analyzer.DefaultAnomalyThreshold
	}

	anomalies := s.trend.DetectAnomalies(req.Points, threshold)
	if anomalies == nil {
		anomalies = []domain.Anomaly{}
	}

	span.SetAttributes(attribute.Int("anomalies.flagged", len(anomalies)))
	return &domain.AnomalyResponse{
		Metric:    req.Metric,
		Anomalies: anomalies,
	}, nil
}

func (s *analysisService) AnalyzeBatch(ctx context.Context, batch domain.HealthBatch, targetMinutes int) (*domain.AnalysisResult, error) {
	ctx, span := analysisTracer().Start(ctx, "AnalysisService.AnalyzeBatch",
		trace.WithAttributes(batchAttributes(batch)...),
	)
	defer span.End()

	readiness, err := s.AnalyzeReadiness(ctx, &domain.AnalyzeReadinessRequest{HealthBatch: batch})
	if err != nil {
		return nil, err
	}
	recovery, err := s.AnalyzeRecovery(ctx, &domain.AnalyzeRecoveryRequest{HealthBatch: batch})
	if err != nil {
		return nil, err
	}

	sleep, err := s.AnalyzeSleep(ctx, &domain.AnalyzeSleepRequest{
		Sessions:      batch.Sleep,
		TargetMinutes: targetMinutes,
	})
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResult{
		Readiness: *readiness,
		Recovery:  *recovery,
		Sleep:     *sleep,
	}, nil
}

func analysisTracer() trace.Tracer {
	return otel.Tracer("vitals-api/analysis")
}

func batchAttributes(batch domain.HealthBatch) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("batch.sleep", len(batch.Sleep)),
		attribute.Int("batch.readiness", len(batch.Readiness)),
		attribute.Int("batch.activity", len(batch.Activity)),
		attribute.Int("batch.hrv", len(batch.HRV)),
		attribute.Int("batch.heart_rate", len(batch.HeartRate)),
	}
}

func attachOutput(span trace.Span, payload any) {
	if out, err := json.Marshal(payload); err == nil {
		span.SetAttributes(attribute.String("analysis.output", string(out)))
	}
}
