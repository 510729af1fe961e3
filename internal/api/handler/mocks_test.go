package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/domain"
)

// mockUserService is a mock implementation of service.UserService
type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// mockSyncService is a mock implementation of service.SyncService
type mockSyncService struct {
	syncResponse *domain.SyncResponse
	listResponse *domain.SnapshotListResponse
	lastFilter   domain.SnapshotFilter
	err          error
}

func (m *mockSyncService) Sync(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.syncResponse, nil
}

func (m *mockSyncService) ListSnapshots(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) (*domain.SnapshotListResponse, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.listResponse, nil
}
