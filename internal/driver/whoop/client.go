// Package whoop adapts the WHOOP developer API v1 to the HealthDriver
// contract. Authentication uses the OAuth2 refresh-token grant; the token
// source renews access tokens transparently.
package whoop

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/trainwell/vitals-api/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the production WHOOP API host.
	DefaultBaseURL = "https://api.prod.whoop.com"

	requestTimeout = 30 * time.Second
	pageLimit      = "25"
)

// Config carries the OAuth2 credentials for a WHOOP integration.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Client talks to the WHOOP developer API on behalf of a single user.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a WHOOP driver. An empty BaseURL falls back to the
// production host.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: baseURL + "/oauth/oauth2/token",
		},
	}
	source := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	})

	http := resty.NewWithClient(oauth2.NewClient(context.Background(), source)).
		SetBaseURL(baseURL + "/developer").
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		logger: logger,
	}
}

// Name returns the source tag stamped on every record.
func (c *Client) Name() domain.Source {
	return domain.SourceWhoop
}

// GetSleep fetches scored, non-nap sleep activities in the range.
func (c *Client) GetSleep(ctx context.Context, r domain.DateRange) ([]domain.SleepSession, error) {
	records, err := collectPages[sleepRecord](ctx, c, "/v1/activity/sleep", r)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.SleepSession, 0, len(records))
	for _, rec := range records {
		if rec.ScoreState != scoreStateScored || rec.Nap {
			continue
		}
		s, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed whoop sleep record",
				zap.String("id", rec.ID),
				zap.Error(err),
			)
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// GetDailyActivity maps scored physiological cycles to activity days.
// WHOOP strain (0-21) is rescaled to the 0-100 score range and kilojoules
// converted to kilocalories; WHOOP reports no step counts.
func (c *Client) GetDailyActivity(ctx context.Context, r domain.DateRange) ([]domain.DailyActivity, error) {
	records, err := collectPages[cycleRecord](ctx, c, "/v1/cycle", r)
	if err != nil {
		return nil, err
	}

	days := make([]domain.DailyActivity, 0, len(records))
	for _, rec := range records {
		if rec.ScoreState != scoreStateScored {
			continue
		}
		d, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed whoop cycle record",
				zap.Int64("id", rec.ID),
				zap.Error(err),
			)
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

// GetReadiness maps scored recovery records to readiness days. Records
// from a calibrating account carry no meaningful score and are skipped.
func (c *Client) GetReadiness(ctx context.Context, r domain.DateRange) ([]domain.DailyReadiness, error) {
	records, err := c.recoveries(ctx, r)
	if err != nil {
		return nil, err
	}

	days := make([]domain.DailyReadiness, 0, len(records))
	for _, rec := range records {
		d, err := rec.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed whoop recovery record",
				zap.Int64("cycle_id", rec.CycleID),
				zap.Error(err),
			)
			continue
		}
		days = append(days, d)
	}
	return days, nil
}

// GetHRV extracts the nightly RMSSD measurement from recovery records.
func (c *Client) GetHRV(ctx context.Context, r domain.DateRange) ([]domain.HRVSample, error) {
	records, err := c.recoveries(ctx, r)
	if err != nil {
		return nil, err
	}

	samples := make([]domain.HRVSample, 0, len(records))
	for _, rec := range records {
		s, err := rec.toHRVSample()
		if err != nil {
			c.logger.Warn("skipping malformed whoop recovery record",
				zap.Int64("cycle_id", rec.CycleID),
				zap.Error(err),
			)
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// GetHeartRate always returns no data; the developer API exposes no raw
// heart-rate series.
func (c *Client) GetHeartRate(ctx context.Context, r domain.DateRange) ([]domain.HeartRateSample, error) {
	return []domain.HeartRateSample{}, nil
}

// GetBodyComposition fetches the current body measurement. WHOOP keeps a
// single measurement without history, reported as today's record.
func (c *Client) GetBodyComposition(ctx context.Context, r domain.DateRange) ([]domain.BodyComposition, error) {
	var m bodyMeasurement
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&m).
		Get("/v1/user/measurement/body")
	if err != nil {
		return nil, fmt.Errorf("%w: whoop request failed: %v", domain.ErrDriverUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: whoop returned %d for body measurement", domain.ErrDriverUnavailable, resp.StatusCode())
	}

	if m.WeightKilogram <= 0 {
		return []domain.BodyComposition{}, nil
	}
	return []domain.BodyComposition{m.toDomain(time.Now().UTC())}, nil
}

func (c *Client) recoveries(ctx context.Context, r domain.DateRange) ([]recoveryRecord, error) {
	records, err := collectPages[recoveryRecord](ctx, c, "/v1/recovery", r)
	if err != nil {
		return nil, err
	}

	scored := records[:0]
	for _, rec := range records {
		if rec.ScoreState == scoreStateScored && !rec.Score.UserCalibrating {
			scored = append(scored, rec)
		}
	}
	return scored, nil
}

// collectPages walks a WHOOP collection endpoint following nextToken
// until the cursor is exhausted.
func collectPages[T any](ctx context.Context, c *Client, path string, r domain.DateRange) ([]T, error) {
	params := map[string]string{"limit": pageLimit}
	if !r.Start.IsZero() {
		params["start"] = r.Start.UTC().Format(time.RFC3339)
	}
	if !r.End.IsZero() {
		params["end"] = r.End.UTC().Format(time.RFC3339)
	}

	var all []T
	nextToken := ""

	for {
		req := c.http.R().
			SetContext(ctx).
			SetQueryParams(params)
		if nextToken != "" {
			req.SetQueryParam("nextToken", nextToken)
		}

		var page recordsEnvelope[T]
		resp, err := req.SetResult(&page).Get(path)
		if err != nil {
			return nil, fmt.Errorf("%w: whoop request failed: %v", domain.ErrDriverUnavailable, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%w: whoop returned %d for %s", domain.ErrDriverUnavailable, resp.StatusCode(), path)
		}

		all = append(all, page.Records...)

		if page.NextToken == nil || *page.NextToken == "" {
			return all, nil
		}
		nextToken = *page.NextToken
	}
}
