package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/internal/driver"
	"github.com/trainwell/vitals-api/internal/repository"
	"github.com/trainwell/vitals-api/pkg/pagination"
	"go.uber.org/zap"
)

// DefaultSyncWindowDays is the range fetched when the request names no start.
const DefaultSyncWindowDays = 14

// SyncService pulls a date range from a vendor driver, runs the analyzer
// battery over it and persists the outputs as a snapshot. Normalized input
// records are never stored.
type SyncService interface {
	// Sync fetches, analyzes and persists one vendor range for a user.
	Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResponse, error)
	// ListSnapshots returns a cursor-paginated page of stored snapshots.
	ListSnapshots(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) (*domain.SnapshotListResponse, error)
}

type syncService struct {
	drivers      *driver.Registry
	analysis     AnalysisService
	snapshotRepo repository.SnapshotRepository
	userRepo     repository.UserRepository
	logger       *zap.Logger
}

// NewSyncService creates a new SyncService.
func NewSyncService(
	drivers *driver.Registry,
	analysis AnalysisService,
	snapshotRepo repository.SnapshotRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) SyncService {
	return &syncService{
		drivers:      drivers,
		analysis:     analysis,
		snapshotRepo: snapshotRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *syncService) Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	drv, err := s.drivers.Get(req.Source)
	if err != nil {
		return nil, err
	}

	r := resolveRange(req, time.Now().UTC())

	batch, err := s.fetchBatch(ctx, drv, r)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vendor batch fetched",
		zap.String("user_id", userID.String()),
		zap.String("source", string(req.Source)),
		zap.Int("sleep", len(batch.Sleep)),
		zap.Int("readiness", len(batch.Readiness)),
		zap.Int("activity", len(batch.Activity)),
		zap.Int("hrv", len(batch.HRV)),
		zap.Int("heart_rate", len(batch.HeartRate)),
	)

	result, err := s.analysis.AnalyzeBatch(ctx, *batch, user.TargetSleepMinutes)
	if err != nil {
		return nil, err
	}

	snapshot := buildSnapshot(userID, req.Source, *batch, r, result)
	if err := s.snapshotRepo.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchLastSynced(ctx, userID, time.Now().UTC()); err != nil {
		// The snapshot is already stored; a stale marker is not worth failing over.
		s.logger.Warn("failed to update last synced marker",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	return &domain.SyncResponse{
		Snapshot: *snapshot,
		Analysis: *result,
	}, nil
}

// fetchBatch pulls the five metric kinds concurrently. The first driver
// error wins; remaining fetches still run to completion.
func (s *syncService) fetchBatch(ctx context.Context, drv domain.HealthDriver, r domain.DateRange) (*domain.HealthBatch, error) {
	var (
		batch    domain.HealthBatch
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		sleep, err := drv.GetSleep(ctx, r)
		if err != nil {
			fail(err)
			return
		}
		batch.Sleep = sleep
	}()
	go func() {
		defer wg.Done()
		readiness, err := drv.GetReadiness(ctx, r)
		if err != nil {
			fail(err)
			return
		}
		batch.Readiness = readiness
	}()
	go func() {
		defer wg.Done()
		activity, err := drv.GetDailyActivity(ctx, r)
		if err != nil {
			fail(err)
			return
		}
		batch.Activity = activity
	}()
	go func() {
		defer wg.Done()
		hrv, err := drv.GetHRV(ctx, r)
		if err != nil {
			fail(err)
			return
		}
		batch.HRV = hrv
	}()
	go func() {
		defer wg.Done()
		heartRate, err := drv.GetHeartRate(ctx, r)
		if err != nil {
			fail(err)
			return
		}
		batch.HeartRate = heartRate
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &batch, nil
}

func (s *syncService) ListSnapshots(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) (*domain.SnapshotListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	snapshots, err := s.snapshotRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(snapshots) > limit
	if hasMore {
		snapshots = snapshots[:limit]
	}

	response := &domain.SnapshotListResponse{
		Data: snapshots,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(snapshots) > 0 {
		last := snapshots[len(snapshots)-1]
		cursor := &pagination.Cursor{
			ID:  last.ID,
			Day: last.Day,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func resolveRange(req *domain.SyncRequest, now time.Time) domain.DateRange {
	end := now
	if req.End != nil {
		end = *req.End
	}
	start := end.AddDate(0, 0, -DefaultSyncWindowDays)
	if req.Start != nil {
		start = *req.Start
	}
	return domain.DateRange{Start: start, End: end}
}

// buildSnapshot keys the snapshot to the latest sleep day in the batch,
// falling back to the range end when the batch holds no sleep.
func buildSnapshot(userID uuid.UUID, source domain.Source, batch domain.HealthBatch, r domain.DateRange, result *domain.AnalysisResult) *domain.AnalysisSnapshot {
	var day time.Time
	for _, s := range batch.Sleep {
		if d := truncateToDay(s.Day); d.After(day) {
			day = d
		}
	}
	if day.IsZero() {
		day = truncateToDay(r.End)
	}

	sleepScore := 0
	if n := len(result.Sleep.Quality); n > 0 {
		sleepScore = result.Sleep.Quality[n-1].Overall
	}

	factors := map[string]map[string]int{
		"readiness": result.Readiness.Factors,
		"recovery":  result.Recovery.Factors,
	}
	factorsJSON, err := json.Marshal(factors)
	if err != nil {
		factorsJSON = []byte("{}")
	}

	return &domain.AnalysisSnapshot{
		ID:             uuid.New(),
		UserID:         userID,
		Day:            day,
		Source:         source,
		ReadinessScore: result.Readiness.Score,
		RecoveryScore:  result.Recovery.Score,
		SleepScore:     sleepScore,
		Recommendation: result.Readiness.Recommendation,
		Status:         result.Recovery.Status,
		FactorsJSON:    string(factorsJSON),
	}
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
