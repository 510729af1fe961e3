package service

import (
	"context"

	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/llm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService generates LLM-backed narratives over the analyzer battery.
type InsightsService interface {
	// Generate runs the battery over the request batch and narrates it.
	Generate(ctx context.Context, req *domain.AnalyzeInsightsRequest) (*domain.InsightsResponse, error)
}

type insightsService struct {
	analysis  AnalysisService
	llmClient llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService. A nil llmClient leaves
// the service constructed but every Generate call fails with
// llm.ErrOpenAIUnavailable.
func NewInsightsService(analysis AnalysisService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		analysis:  analysis,
		llmClient: llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, req *domain.AnalyzeInsightsRequest) (*domain.InsightsResponse, error) {
	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	ctx, span := otel.Tracer("vitals-api/insights").Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(batchAttributes(req.HealthBatch)...),
	)
	defer span.End()

	analysis, err := s.analysis.AnalyzeBatch(ctx, req.HealthBatch, req.TargetMinutes)
	if err != nil {
		return nil, err
	}

	insights, err := s.llmClient.GenerateInsights(ctx, analysis)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("insights.observations", len(insights.Observations)),
		attribute.Int("insights.guidance", len(insights.Guidance)),
	)

	return &domain.InsightsResponse{
		Analysis: *analysis,
		Insights: *insights,
	}, nil
}
