package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trainwell/vitals-api/internal/api/validation"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/llm"
	"github.com/trainwell/vitals-api/internal/service"
	"github.com/trainwell/vitals-api/pkg/problem"
)

// AnalyzeHandler serves the stateless analysis endpoints. Callers supply
// normalized batches in the request body; nothing is persisted.
type AnalyzeHandler struct {
	analysis service.AnalysisService
	insights service.InsightsService
}

func NewAnalyzeHandler(analysis service.AnalysisService, insights service.InsightsService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysis: analysis,
		insights: insights,
	}
}

// Sleep handles POST /v1/analyze/sleep
// @Summary Analyze sleep quality
// @Description Score each session on six weighted dimensions, with cross-night consistency and sleep-debt analysis
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeSleepRequest true "Sleep sessions to analyze"
// @Success 200 {object} domain.SleepAnalysisResponse
// @Failure 400 {object} problem.Problem
// @Router /analyze/sleep [post]
func (h *AnalyzeHandler) Sleep(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeSleepRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.analysis.AnalyzeSleep(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to analyze sleep").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Readiness handles POST /v1/analyze/readiness
// @Summary Calculate training readiness
// @Description Blend six factors into a 0-100 readiness score with a training recommendation
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeReadinessRequest true "Health batch to analyze"
// @Success 200 {object} domain.TrainingReadiness
// @Failure 400 {object} problem.Problem
// @Router /analyze/readiness [post]
func (h *AnalyzeHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeReadinessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	readiness, err := h.analysis.AnalyzeReadiness(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to calculate readiness").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, readiness)
}

// Recovery handles POST /v1/analyze/recovery
// @Summary Calculate recovery
// @Description Blend four factors into a 0-100 recovery score with a recovery status
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeRecoveryRequest true "Health batch to analyze"
// @Success 200 {object} domain.RecoveryScore
// @Failure 400 {object} problem.Problem
// @Router /analyze/recovery [post]
func (h *AnalyzeHandler) Recovery(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRecoveryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	recovery, err := h.analysis.AnalyzeRecovery(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to calculate recovery").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, recovery)
}

// Trends handles POST /v1/analyze/trends
// @Summary Analyze metric trends
// @Description Split each metric series into halves and classify the movement
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeTrendsRequest true "Metric series to analyze"
// @Success 200 {array} domain.HealthTrend
// @Failure 400 {object} problem.Problem
// @Router /analyze/trends [post]
func (h *AnalyzeHandler) Trends(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeTrendsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	trends, err := h.analysis.AnalyzeTrends(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to analyze trends").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, trends)
}

// Anomalies handles POST /v1/analyze/anomalies
// @Summary Detect metric anomalies
// @Description Flag points deviating from the series mean by a standard-deviation threshold
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeAnomaliesRequest true "Metric series to scan"
// @Success 200 {object} domain.AnomalyResponse
// @Failure 400 {object} problem.Problem
// @Router /analyze/anomalies [post]
func (h *AnalyzeHandler) Anomalies(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeAnomaliesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.analysis.DetectAnomalies(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to detect anomalies").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Insights handles POST /v1/analyze/insights
// @Summary Generate LLM insights
// @Description Run the analyzer battery and narrate the result with an LLM
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeInsightsRequest true "Health batch to analyze"
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 502 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Router /analyze/insights [post]
func (h *AnalyzeHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeInsightsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.insights.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("Insights are not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("Insights generation failed upstream").Write(w)
		default:
			problem.InternalError("Failed to generate insights").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
