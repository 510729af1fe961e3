package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/domain"
	"github.com/trainwell/vitals-api/pkg/pagination"
	"gorm.io/gorm"
)

type SnapshotRepository interface {
	// Upsert stores a snapshot, replacing any existing one for the same
	// user, day and source so a re-sync does not duplicate rows.
	Upsert(ctx context.Context, snapshot *domain.AnalysisSnapshot) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisSnapshot, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) ([]domain.AnalysisSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *domain.AnalysisSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.AnalysisSnapshot
		err := tx.Where("user_id = ? AND day = ? AND source = ?",
			snapshot.UserID, snapshot.Day, snapshot.Source).
			First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			return tx.Create(snapshot).Error
		case err != nil:
			return err
		default:
			snapshot.ID = existing.ID
			snapshot.CreatedAt = existing.CreatedAt
			return tx.Save(snapshot).Error
		}
	})
}

func (r *snapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisSnapshot, error) {
	var snapshot domain.AnalysisSnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *snapshotRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SnapshotFilter) ([]domain.AnalysisSnapshot, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day DESC, id DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("day >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("day <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, err
		}
		// For DESC order: records strictly older than the cursor,
		// or the same day with a smaller id.
		query = query.Where(
			"(day < ?) OR (day = ? AND id < ?)",
			cursor.Day, cursor.Day, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var snapshots []domain.AnalysisSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return snapshots, nil
}
