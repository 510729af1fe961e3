package domain

import "context"

// HealthDriver is the contract every vendor adapter implements.
//
// Each method returns the normalized records for the given range. A metric
// the platform does not support, or a range with no data, yields an empty
// slice and a nil error; errors are reserved for transport and auth
// failures in the adapter itself.
type HealthDriver interface {
	// Name returns the source tag this driver stamps on its records.
	Name() Source

	GetSleep(ctx context.Context, r DateRange) ([]SleepSession, error)
	GetDailyActivity(ctx context.Context, r DateRange) ([]DailyActivity, error)
	GetReadiness(ctx context.Context, r DateRange) ([]DailyReadiness, error)
	GetHRV(ctx context.Context, r DateRange) ([]HRVSample, error)
	GetHeartRate(ctx context.Context, r DateRange) ([]HeartRateSample, error)
	GetBodyComposition(ctx context.Context, r DateRange) ([]BodyComposition, error)
}
