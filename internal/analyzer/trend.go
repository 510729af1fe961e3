package analyzer

import (
	"math"

	"github.com/trainwell/vitals-api/internal/domain"
)

const (
	// DefaultTrendPeriodDays is the nominal analysis period when none is given.
	DefaultTrendPeriodDays = 14

	// DefaultMovingAverageWindow is the trailing window for moving averages.
	DefaultMovingAverageWindow = 7

	// DefaultAnomalyThreshold is the standard-deviation threshold for
	// anomaly detection.
	DefaultAnomalyThreshold = 2.0

	// MinPointsForAnomalies is the minimum series length for anomaly
	// detection; shorter series yield an empty result.
	MinPointsForAnomalies = 5

	// TrendChangeThresholdPercent is the percent change needed to classify
	// a trend as improving or declining rather than stable.
	TrendChangeThresholdPercent = 5.0
)

// TrendAnalyzer is a generic time-series utility: direction classification,
// trailing moving average and standard-deviation anomaly detection.
type TrendAnalyzer interface {
	// AnalyzeTrend splits the series in half by count and compares the
	// half averages. An empty series yields an all-zero stable result.
	AnalyzeTrend(metric string, points []domain.MetricPoint, periodDays int) domain.HealthTrend

	// CalculateMovingAverage computes a trailing moving average; early
	// points use a shorter window rather than padding.
	CalculateMovingAverage(points []domain.MetricPoint, windowSize int) []domain.MetricPoint

	// DetectAnomalies flags points at least threshold standard deviations
	// from the series mean, reporting the signed deviation.
	DetectAnomalies(points []domain.MetricPoint, stdDevThreshold float64) []domain.Anomaly

	// AnalyzeMultipleMetrics maps AnalyzeTrend over each named series.
	AnalyzeMultipleMetrics(metrics []domain.MetricSeries, periodDays int) []domain.HealthTrend
}

type trendAnalyzer struct{}

// NewTrendAnalyzer creates a stateless TrendAnalyzer.
func NewTrendAnalyzer() TrendAnalyzer {
	return &trendAnalyzer{}
}

func (a *trendAnalyzer) AnalyzeTrend(metric string, points []domain.MetricPoint, periodDays int) domain.HealthTrend {
	if periodDays <= 0 {
		periodDays = DefaultTrendPeriodDays
	}

	result := domain.HealthTrend{
		Metric:     metric,
		Direction:  domain.TrendStable,
		PeriodDays: periodDays,
		DataPoints: len(points),
	}
	if len(points) == 0 {
		return result
	}

	sorted := sortPointsByDay(points)
	mid := len(sorted) / 2

	var previous []float64
	for _, p := range sorted[:mid] {
		previous = append(previous, p.Value)
	}
	var current []float64
	for _, p := range sorted[mid:] {
		current = append(current, p.Value)
	}

	previousAvg := mean(previous)
	currentAvg := mean(current)

	percentChange := 0.0
	if previousAvg != 0 {
		percentChange = (currentAvg - previousAvg) / previousAvg * 100
	}

	result.CurrentAverage = round2(currentAvg)
	result.PreviousAverage = round2(previousAvg)
	result.PercentChange = round2(percentChange)
	result.Direction = directionForChange(result.PercentChange)

	return result
}

func (a *trendAnalyzer) CalculateMovingAverage(points []domain.MetricPoint, windowSize int) []domain.MetricPoint {
	if windowSize <= 0 {
		windowSize = DefaultMovingAverageWindow
	}
	if len(points) == 0 {
		return nil
	}

	sorted := sortPointsByDay(points)
	result := make([]domain.MetricPoint, len(sorted))
	for i := range sorted {
		start := i - windowSize + 1
		if start < 0 {
			start = 0
		}
		var window []float64
		for _, p := range sorted[start : i+1] {
			window = append(window, p.Value)
		}
		result[i] = domain.MetricPoint{
			Day:   sorted[i].Day,
			Value: round2(mean(window)),
		}
	}
	return result
}

func (a *trendAnalyzer) DetectAnomalies(points []domain.MetricPoint, stdDevThreshold float64) []domain.Anomaly {
	if stdDevThreshold <= 0 {
		stdDevThreshold = DefaultAnomalyThreshold
	}
	if len(points) < MinPointsForAnomalies {
		return nil
	}

	sorted := sortPointsByDay(points)
	values := make([]float64, len(sorted))
	for i, p := range sorted {
		values[i] = p.Value
	}

	avg := mean(values)
	std := populationStdDev(values)
	// A constant series has no anomalies.
	if std == 0 {
		return nil
	}

	var anomalies []domain.Anomaly
	for _, p := range sorted {
		deviation := (p.Value - avg) / std
		if math.Abs(deviation) >= stdDevThreshold {
			anomalies = append(anomalies, domain.Anomaly{
				Day:       p.Day,
				Value:     p.Value,
				Deviation: round2(deviation),
			})
		}
	}
	return anomalies
}

func (a *trendAnalyzer) AnalyzeMultipleMetrics(metrics []domain.MetricSeries, periodDays int) []domain.HealthTrend {
	trends := make([]domain.HealthTrend, 0, len(metrics))
	for _, m := range metrics {
		trends = append(trends, a.AnalyzeTrend(m.Metric, m.Points, periodDays))
	}
	return trends
}

func directionForChange(percentChange float64) domain.TrendDirection {
	switch {
	case percentChange >= TrendChangeThresholdPercent:
		return domain.TrendImproving
	case percentChange <= -TrendChangeThresholdPercent:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}
