package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/trainwell/vitals-api/internal/domain"
)

type stubDriver struct {
	source domain.Source
}

func (d stubDriver) Name() domain.Source { return d.source }
func (d stubDriver) GetSleep(ctx context.Context, r domain.DateRange) ([]domain.SleepSession, error) {
	return nil, nil
}
func (d stubDriver) GetDailyActivity(ctx context.Context, r domain.DateRange) ([]domain.DailyActivity, error) {
	return nil, nil
}
func (d stubDriver) GetReadiness(ctx context.Context, r domain.DateRange) ([]domain.DailyReadiness, error) {
	return nil, nil
}
func (d stubDriver) GetHRV(ctx context.Context, r domain.DateRange) ([]domain.HRVSample, error) {
	return nil, nil
}
func (d stubDriver) GetHeartRate(ctx context.Context, r domain.DateRange) ([]domain.HeartRateSample, error) {
	return nil, nil
}
func (d stubDriver) GetBodyComposition(ctx context.Context, r domain.DateRange) ([]domain.BodyComposition, error) {
	return nil, nil
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry(
		stubDriver{source: domain.SourceOura},
		stubDriver{source: domain.SourceWhoop},
	)

	d, err := reg.Get(domain.SourceOura)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if d.Name() != domain.SourceOura {
		t.Errorf("Name() = %v, want %v", d.Name(), domain.SourceOura)
	}
}

func TestRegistryGetUnknownSource(t *testing.T) {
	reg := NewRegistry(stubDriver{source: domain.SourceOura})

	_, err := reg.Get(domain.SourceFitbit)
	if !errors.Is(err, domain.ErrUnknownSource) {
		t.Errorf("Get() error = %v, want ErrUnknownSource", err)
	}
}

func TestRegistrySkipsNilDrivers(t *testing.T) {
	reg := NewRegistry(stubDriver{source: domain.SourceOura}, nil)

	sources := reg.Sources()
	if len(sources) != 1 {
		t.Fatalf("Sources() = %v, want 1 entry", sources)
	}
	if sources[0] != domain.SourceOura {
		t.Errorf("Sources()[0] = %v, want oura", sources[0])
	}
}
