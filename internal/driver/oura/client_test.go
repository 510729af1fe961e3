package oura

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainwell/vitals-api/internal/domain"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", zap.NewNop())
}

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetSleep(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/usercollection/sleep", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-01-10", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-01-17", r.URL.Query().Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [{
				"id": "sleep-1",
				"day": "2024-01-16",
				"bedtime_start": "2024-01-15T23:10:00Z",
				"bedtime_end": "2024-01-16T07:05:00Z",
				"total_sleep_duration": 26400,
				"deep_sleep_duration": 5400,
				"light_sleep_duration": 14400,
				"rem_sleep_duration": 6600,
				"awake_time": 1500,
				"efficiency": 92,
				"latency": 540,
				"average_hrv": 48,
				"lowest_heart_rate": 46,
				"type": "long_sleep"
			}],
			"next_token": null
		}`)
	})

	sessions, err := client.GetSleep(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.Equal(t, domain.SourceOura, s.Source)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), s.Day)
	assert.Equal(t, time.Date(2024, 1, 15, 23, 10, 0, 0, time.UTC), s.BedtimeStart)
	assert.Equal(t, 26400, s.TotalSleepDuration)
	assert.Equal(t, 5400, s.DeepSleepDuration)
	assert.Equal(t, 1500, s.AwakeDuration)
	assert.Equal(t, 92.0, s.Efficiency)
	require.NotNil(t, s.AverageHRV)
	assert.Equal(t, 48.0, *s.AverageHRV)
	require.NotNil(t, s.Latency)
	assert.Equal(t, 540, *s.Latency)
}

func TestGetSleepFollowsPagination(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("next_token") {
		case "":
			fmt.Fprint(w, `{
				"data": [{"id": "a", "day": "2024-01-15", "bedtime_start": "2024-01-14T23:00:00Z", "bedtime_end": "2024-01-15T07:00:00Z", "total_sleep_duration": 25200, "efficiency": 90}],
				"next_token": "page-2"
			}`)
		case "page-2":
			fmt.Fprint(w, `{
				"data": [{"id": "b", "day": "2024-01-16", "bedtime_start": "2024-01-15T23:00:00Z", "bedtime_end": "2024-01-16T07:00:00Z", "total_sleep_duration": 27000, "efficiency": 94}],
				"next_token": null
			}`)
		default:
			t.Errorf("unexpected next_token %q", r.URL.Query().Get("next_token"))
		}
	})

	sessions, err := client.GetSleep(context.Background(), testRange())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, sessions, 2)
	assert.Equal(t, 25200, sessions[0].TotalSleepDuration)
	assert.Equal(t, 27000, sessions[1].TotalSleepDuration)
}

func TestGetSleepSkipsMalformedRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"id": "bad", "day": "not-a-date", "bedtime_start": "2024-01-14T23:00:00Z", "bedtime_end": "2024-01-15T07:00:00Z", "total_sleep_duration": 25200, "efficiency": 90},
				{"id": "good", "day": "2024-01-16", "bedtime_start": "2024-01-15T23:00:00Z", "bedtime_end": "2024-01-16T07:00:00Z", "total_sleep_duration": 27000, "efficiency": 94}
			],
			"next_token": null
		}`)
	})

	sessions, err := client.GetSleep(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 27000, sessions[0].TotalSleepDuration)
}

func TestGetSleepUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetSleep(context.Background(), testRange())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriverUnavailable)
}

func TestGetReadiness(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/usercollection/daily_readiness", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [{
				"day": "2024-01-16",
				"score": 82,
				"temperature_deviation": -0.2,
				"contributors": {
					"hrv_balance": 72,
					"resting_heart_rate": 88,
					"sleep_balance": 79
				}
			}],
			"next_token": null
		}`)
	})

	days, err := client.GetReadiness(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, days, 1)

	d := days[0]
	assert.Equal(t, 82.0, d.Score)
	require.NotNil(t, d.TemperatureDeviation)
	assert.Equal(t, -0.2, *d.TemperatureDeviation)
	require.NotNil(t, d.Contributors.HRVBalance)
	assert.Equal(t, 72.0, *d.Contributors.HRVBalance)
	assert.Nil(t, d.Contributors.BodyTemperature)
}

func TestGetDailyActivity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/usercollection/daily_activity", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [{
				"day": "2024-01-16",
				"score": 74,
				"steps": 10412,
				"active_calories": 520,
				"total_calories": 2480,
				"high_activity_time": 1800,
				"medium_activity_time": 3600,
				"low_activity_time": 14400,
				"sedentary_time": 28800
			}],
			"next_token": null
		}`)
	})

	days, err := client.GetDailyActivity(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 74.0, days[0].Score)
	assert.Equal(t, 10412, days[0].Steps)
	assert.Equal(t, 28800, days[0].SedentaryTime)
}

func TestGetHRVDerivedFromSleep(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"id": "a", "day": "2024-01-15", "bedtime_start": "2024-01-14T23:00:00Z", "bedtime_end": "2024-01-15T07:00:00Z", "total_sleep_duration": 25200, "efficiency": 90, "average_hrv": 51},
				{"id": "b", "day": "2024-01-16", "bedtime_start": "2024-01-15T23:00:00Z", "bedtime_end": "2024-01-16T07:00:00Z", "total_sleep_duration": 27000, "efficiency": 94}
			],
			"next_token": null
		}`)
	})

	samples, err := client.GetHRV(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, samples, 1, "sessions without average_hrv are skipped")
	assert.Equal(t, 51.0, samples[0].HRV)
	assert.Equal(t, time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC), samples[0].Timestamp)
}

func TestGetHeartRateUsesDatetimeParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/usercollection/heartrate", r.URL.Path)
		assert.Equal(t, "2024-01-10T00:00:00Z", r.URL.Query().Get("start_datetime"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [{"bpm": 54, "source": "sleep", "timestamp": "2024-01-16T04:30:00Z"}],
			"next_token": null
		}`)
	})

	samples, err := client.GetHeartRate(context.Background(), testRange())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 54.0, samples[0].BPM)
}

func TestGetBodyCompositionIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	comps, err := client.GetBodyComposition(context.Background(), testRange())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestName(t *testing.T) {
	client := NewClient("", "token", zap.NewNop())
	assert.Equal(t, domain.SourceOura, client.Name())
}
