package service

import (
	"context"
	"errors"
	"testing"

	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/llm"
)

func TestInsightsUnavailableWithoutClient(t *testing.T) {
	svc := NewInsightsService(newAnalysisService(), nil)

	_, err := svc.Generate(context.Background(), &domain.AnalyzeInsightsRequest{})
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("Generate() error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestInsightsGenerate(t *testing.T) {
	mock := &MockInsightsLLM{
		output: &domain.LLMInsightsOutput{
			Summary:      "Readiness is solid.",
			Observations: []string{"HRV is trending up."},
			Guidance:     []string{"Train as planned."},
		},
	}
	svc := NewInsightsService(newAnalysisService(), mock)

	resp, err := svc.Generate(context.Background(), &domain.AnalyzeInsightsRequest{
		HealthBatch: domain.HealthBatch{
			Sleep: []domain.SleepSession{
				testSession(1, 8),
				testSession(2, 8),
				testSession(3, 8),
			},
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Insights.Summary != "Readiness is solid." {
		t.Errorf("Summary = %q", resp.Insights.Summary)
	}
	if mock.lastAnalysis == nil {
		t.Fatal("LLM was not given the analysis result")
	}
	if len(mock.lastAnalysis.Sleep.Quality) != 3 {
		t.Errorf("LLM saw %d quality scores, want 3", len(mock.lastAnalysis.Sleep.Quality))
	}
	if len(resp.Analysis.Sleep.Quality) != 3 {
		t.Errorf("response carries %d quality scores, want 3", len(resp.Analysis.Sleep.Quality))
	}
}

func TestInsightsLLMErrorPropagates(t *testing.T) {
	mock := &MockInsightsLLM{err: llm.ErrOpenAIResponse}
	svc := NewInsightsService(newAnalysisService(), mock)

	_, err := svc.Generate(context.Background(), &domain.AnalyzeInsightsRequest{})
	if !errors.Is(err, llm.ErrOpenAIResponse) {
		t.Errorf("Generate() error = %v, want ErrOpenAIResponse", err)
	}
}
