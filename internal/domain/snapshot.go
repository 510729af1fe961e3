package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSnapshot is a persisted record of one analysis run for a user/day.
// Only analyzer outputs are stored; the normalized input batches live solely
// for the duration of the analysis call.
type AnalysisSnapshot struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshots_user_day" json:"user_id"`
	Day    time.Time `gorm:"not null;index:idx_snapshots_user_day,sort:desc" json:"day"`
	Source Source    `gorm:"type:varchar(20);not null" json:"source"`

	ReadinessScore int                    `gorm:"type:smallint;not null" json:"readiness_score"`
	RecoveryScore  int                    `gorm:"type:smallint;not null" json:"recovery_score"`
	SleepScore     int                    `gorm:"type:smallint;not null" json:"sleep_score"`
	Recommendation TrainingRecommendation `gorm:"type:varchar(20);not null" json:"recommendation"`
	Status         RecoveryStatus         `gorm:"type:varchar(30);not null" json:"status"`
	// JSON-encoded factor maps from the readiness and recovery analyzers
	FactorsJSON string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AnalysisSnapshot) TableName() string {
	return "analysis_snapshots"
}

// SnapshotListResponse is the response body for listing snapshots.
// @Description Paginated list of analysis snapshots.
type SnapshotListResponse struct {
	Data       []AnalysisSnapshot `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SnapshotFilter contains filter parameters for listing snapshots
type SnapshotFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
