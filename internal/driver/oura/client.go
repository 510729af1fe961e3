// Package oura adapts the Oura v2 REST API to the HealthDriver contract.
package oura

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/trainwell/vitals-api/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production Oura API host.
	DefaultBaseURL = "https://api.ouraring.com"

	requestTimeout = 30 * time.Second
	retryCount     = 3
)

// Client talks to the Oura v2 API with a static personal access token.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates an Oura driver. An empty baseURL falls back to the
// production host.
func NewClient(baseURL, accessToken string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		logger: logger,
	}
}

// Name returns the source tag stamped on every record.
func (c *Client) Name() domain.Source {
	return domain.SourceOura
}

// GetSleep fetches sleep sessions in the range.
func (c *Client) GetSleep(ctx context.Context, r domain.DateRange) ([]domain.SleepSession, error) {
	records, err := collectPages[sleepRecord](ctx, c, "/v2/usercollection/sleep", dayRangeParams(r))
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.SleepSession, 0, len(records))
	for _, rec := range records {
		s, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed oura sleep record",
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// GetDailyActivity fetches daily activity summaries in the range.
func (c *Client) GetDailyActivity(ctx context.Context, r domain.DateRange) ([]domain.DailyActivity, error) {
	records, err := collectPages[activityRecord](ctx, c, "/v2/usercollection/daily_activity", dayRangeParams(r))
	if err != nil {
		return nil, err
	}

	days := make([]domain.DailyActivity, 0, len(records))
	for _, rec := range records {
		d, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed oura activity record",
				zap.String("day", rec.Day),
				zap.Error(err),
			)
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

// GetReadiness fetches daily readiness scores in the range.
func (c *Client) GetReadiness(ctx context.Context, r domain.DateRange) ([]domain.DailyReadiness, error) {
	records, err := collectPages[readinessRecord](ctx, c, "/v2/usercollection/daily_readiness", dayRangeParams(r))
	if err != nil {
		return nil, err
	}

	days := make([]domain.DailyReadiness, 0, len(records))
	for _, rec := range records {
		d, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed oura readiness record",
				zap.String("day", rec.Day),
				zap.Error(err),
			)
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

// GetHRV derives one HRV sample per sleep session from the overnight
// average. Oura exposes no standalone HRV time series at this granularity.
func (c *Client) GetHRV(ctx context.Context, r domain.DateRange) ([]domain.HRVSample, error) {
	sessions, err := c.GetSleep(ctx, r)
	if err != nil {
		return nil, err
	}

	samples := make([]domain.HRVSample, 0, len(sessions))
	for _, s := range sessions {
		if s.AverageHRV == nil {
			continue
		}
		samples = append(samples, domain.HRVSample{
			Source:    domain.SourceOura,
			Timestamp: s.BedtimeEnd,
			HRV:       *s.AverageHRV,
		})
	}
	return samples, nil
}

// GetHeartRate fetches raw heart-rate samples in the range.
func (c *Client) GetHeartRate(ctx context.Context, r domain.DateRange) ([]domain.HeartRateSample, error) {
	params := map[string]string{}
	if !r.Start.IsZero() {
		params["start_datetime"] = r.Start.UTC().Format(time.RFC3339)
	}
	if !r.End.IsZero() {
		params["end_datetime"] = r.End.UTC().Format(time.RFC3339)
	}

	records, err := collectPages[heartRateRecord](ctx, c, "/v2/usercollection/heartrate", params)
	if err != nil {
		return nil, err
	}

	samples := make([]domain.HeartRateSample, 0, len(records))
	for _, rec := range records {
		s, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed oura heartrate record", zap.Error(err))
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// GetBodyComposition always returns no data; Oura has no scale metrics.
func (c *Client) GetBodyComposition(ctx context.Context, r domain.DateRange) ([]domain.BodyComposition, error) {
	return []domain.BodyComposition{}, nil
}

// collectPages walks an Oura collection endpoint following next_token
// until the cursor is exhausted.
func collectPages[T any](ctx context.Context, c *Client, path string, params map[string]string) ([]T, error) {
	var all []T
	nextToken := ""

	for {
		req := c.http.R().
			SetContext(ctx).
			SetQueryParams(params)
		if nextToken != "" {
			req.SetQueryParam("next_token", nextToken)
		}

		var page listEnvelope[T]
		resp, err := req.SetResult(&page).Get(path)
		if err != nil {
			return nil, fmt.Errorf("%w: oura request failed: %v", domain.ErrDriverUnavailable, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%w: oura returned %d for %s", domain.ErrDriverUnavailable, resp.StatusCode(), path)
		}

		all = append(all, page.Data...)

		if page.NextToken == nil || *page.NextToken == "" {
			return all, nil
		}
		nextToken = *page.NextToken
	}
}

func dayRangeParams(r domain.DateRange) map[string]string {
	params := map[string]string{}
	if !r.Start.IsZero() {
		params["start_date"] = r.Start.UTC().Format(dayFormat)
	}
	if !r.End.IsZero() {
		params["end_date"] = r.End.UTC().Format(dayFormat)
	}
	return params
}
