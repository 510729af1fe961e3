package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/trainwell/vitals-api/internal/analyzer"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/service"
)

// Analysis endpoints are wired against the real analyzer battery; it is
// pure computation with no external dependencies.
func analyzeRouter() http.Handler {
	analysis := service.NewAnalysisService(
		analyzer.NewSleepAnalyzer(),
		analyzer.NewReadinessAnalyzer(),
		analyzer.NewRecoveryAnalyzer(),
		analyzer.NewTrendAnalyzer(),
	)
	insights := service.NewInsightsService(analysis, nil)
	h := NewAnalyzeHandler(analysis, insights)

	r := chi.NewRouter()
	r.Post("/analyze/sleep", h.Sleep)
	r.Post("/analyze/readiness", h.Readiness)
	r.Post("/analyze/recovery", h.Recovery)
	r.Post("/analyze/trends", h.Trends)
	r.Post("/analyze/anomalies", h.Anomalies)
	r.Post("/analyze/insights", h.Insights)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeSleepEndpoint(t *testing.T) {
	r := analyzeRouter()

	body := `{
		"sessions": [{
			"source": "oura",
			"day": "2024-01-16T00:00:00Z",
			"bedtime_start": "2024-01-15T23:00:00Z",
			"bedtime_end": "2024-01-16T07:30:00Z",
			"total_sleep_duration": 28800,
			"deep_sleep_duration": 5760,
			"rem_sleep_duration": 6480,
			"efficiency": 95,
			"latency": 600
		}]
	}`
	w := postJSON(t, r, "/analyze/sleep", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp domain.SleepAnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Quality) != 1 {
		t.Fatalf("len(Quality) = %d, want 1", len(resp.Quality))
	}
	if resp.Quality[0].Overall <= 0 {
		t.Errorf("Overall = %d, want positive", resp.Quality[0].Overall)
	}
	if resp.Debt.NightsAnalyzed != 1 {
		t.Errorf("NightsAnalyzed = %d, want 1", resp.Debt.NightsAnalyzed)
	}
}

func TestAnalyzeSleepRequiresSessions(t *testing.T) {
	r := analyzeRouter()

	w := postJSON(t, r, "/analyze/sleep", `{"sessions": []}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty sessions", w.Code)
	}
}

func TestAnalyzeReadinessEndpointEmptyBatch(t *testing.T) {
	r := analyzeRouter()

	w := postJSON(t, r, "/analyze/readiness", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp domain.TrainingReadiness
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Score != 50 {
		t.Errorf("Score = %d, want neutral 50", resp.Score)
	}
	if resp.Recommendation != domain.RecommendationEasyDay {
		t.Errorf("Recommendation = %v, want easy_day", resp.Recommendation)
	}
}

func TestAnalyzeRecoveryEndpoint(t *testing.T) {
	r := analyzeRouter()

	body := `{
		"readiness": [
			{"source": "whoop", "day": "2024-01-16T00:00:00Z", "score": 85}
		]
	}`
	w := postJSON(t, r, "/analyze/recovery", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp domain.RecoveryScore
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status == "" {
		t.Error("Status is empty")
	}
	if len(resp.Factors) != 4 {
		t.Errorf("len(Factors) = %d, want 4", len(resp.Factors))
	}
}

func TestAnalyzeTrendsEndpoint(t *testing.T) {
	r := analyzeRouter()

	body := `{
		"metrics": [{
			"metric": "hrv",
			"points": [
				{"day": "2024-01-01T00:00:00Z", "value": 40},
				{"day": "2024-01-02T00:00:00Z", "value": 40},
				{"day": "2024-01-03T00:00:00Z", "value": 50},
				{"day": "2024-01-04T00:00:00Z", "value": 50}
			]
		}]
	}`
	w := postJSON(t, r, "/analyze/trends", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var trends []domain.HealthTrend
	if err := json.NewDecoder(w.Body).Decode(&trends); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(trends) != 1 {
		t.Fatalf("len(trends) = %d, want 1", len(trends))
	}
	if trends[0].Direction != domain.TrendImproving {
		t.Errorf("Direction = %v, want improving", trends[0].Direction)
	}
}

func TestDetectAnomaliesEndpoint(t *testing.T) {
	r := analyzeRouter()

	body := `{
		"metric": "resting_hr",
		"points": [
			{"day": "2024-01-01T00:00:00Z", "value": 50},
			{"day": "2024-01-02T00:00:00Z", "value": 50},
			{"day": "2024-01-03T00:00:00Z", "value": 50},
			{"day": "2024-01-04T00:00:00Z", "value": 50},
			{"day": "2024-01-05T00:00:00Z", "value": 50},
			{"day": "2024-01-06T00:00:00Z", "value": 50},
			{"day": "2024-01-07T00:00:00Z", "value": 50},
			{"day": "2024-01-08T00:00:00Z", "value": 110},
			{"day": "2024-01-09T00:00:00Z", "value": -10}
		]
	}`
	w := postJSON(t, r, "/analyze/anomalies", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp domain.AnomalyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Anomalies) != 2 {
		t.Errorf("len(Anomalies) = %d, want 2", len(resp.Anomalies))
	}
}

func TestDetectAnomaliesValidation(t *testing.T) {
	r := analyzeRouter()

	// Missing metric name and a non-positive threshold.
	w := postJSON(t, r, "/analyze/anomalies", `{"points": [], "std_dev_threshold": -1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestInsightsEndpointUnavailable(t *testing.T) {
	r := analyzeRouter()

	w := postJSON(t, r, "/analyze/insights", `{}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 without an LLM client", w.Code)
	}
}
