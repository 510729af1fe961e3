package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) TouchLastSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.LastSyncedAt = &at
	return nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	snapshots  []*domain.AnalysisSnapshot
	listResult []domain.AnalysisSnapshot
	err        error
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot *domain.AnalysisSnapshot) error {
	if m.err != nil {
		return m.err
	}
	for i, existing := range m.snapshots {
		if existing.UserID == snapshot.UserID && existing.Day.Equal(snapshot.Day) && existing.Source == snapshot.Source {
			snapshot.ID = existing.ID
			m.snapshots[i] = snapshot
			return nil
		}
	}
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	snapshot.CreatedAt = time.Now()
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *MockSnapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.snapshots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSnapshotRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) ([]domain.AnalysisSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listResult, nil
}

// MockHealthDriver is a mock implementation of domain.HealthDriver
type MockHealthDriver struct {
	source    domain.Source
	sleep     []domain.SleepSession
	readiness []domain.DailyReadiness
	activity  []domain.DailyActivity
	hrv       []domain.HRVSample
	heartRate []domain.HeartRateSample
	err       error
}

func (m *MockHealthDriver) Name() domain.Source { return m.source }

func (m *MockHealthDriver) GetSleep(ctx context.Context, r domain.DateRange) ([]domain.SleepSession, error) {
	return m.sleep, m.err
}

func (m *MockHealthDriver) GetDailyActivity(ctx context.Context, r domain.DateRange) ([]domain.DailyActivity, error) {
	return m.activity, m.err
}

func (m *MockHealthDriver) GetReadiness(ctx context.Context, r domain.DateRange) ([]domain.DailyReadiness, error) {
	return m.readiness, m.err
}

func (m *MockHealthDriver) GetHRV(ctx context.Context, r domain.DateRange) ([]domain.HRVSample, error) {
	return m.hrv, m.err
}

func (m *MockHealthDriver) GetHeartRate(ctx context.Context, r domain.DateRange) ([]domain.HeartRateSample, error) {
	return m.heartRate, m.err
}

func (m *MockHealthDriver) GetBodyComposition(ctx context.Context, r domain.DateRange) ([]domain.BodyComposition, error) {
	return nil, m.err
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output       *domain.LLMInsightsOutput
	err          error
	lastAnalysis *domain.AnalysisResult
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, analysis *domain.AnalysisResult) (*domain.LLMInsightsOutput, error) {
	m.lastAnalysis = analysis
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
