package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTargetSleepMinutes is the nightly sleep target used when a user
// has not configured one (8 hours).
const DefaultTargetSleepMinutes = 480

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	// Nightly sleep target in minutes, used for sleep-debt analysis
	TargetSleepMinutes int `gorm:"type:smallint;not null;default:480" json:"target_sleep_minutes"`
	// Set after each successful wearable sync
	LastSyncedAt *time.Time `gorm:"type:timestamptz" json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SleepTarget returns the user's nightly sleep target in minutes,
// falling back to the default when unset.
func (u *User) SleepTarget() int {
	if u.TargetSleepMinutes <= 0 {
		return DefaultTargetSleepMinutes
	}
	return u.TargetSleepMinutes
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a user.
type CreateUserRequest struct {
	// IANA timezone used to resolve local day boundaries
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Optional nightly sleep target in minutes (defaults to 480)
	TargetSleepMinutes *int `json:"target_sleep_minutes,omitempty" validate:"omitempty,min=240,max=720" example:"450"`
}

// UserResponse is the response body for user endpoints.
// @Description Registered user record.
type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Timezone           string     `json:"timezone"`
	TargetSleepMinutes int        `json:"target_sleep_minutes"`
	LastSyncedAt       *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Timezone:           u.Timezone,
		TargetSleepMinutes: u.SleepTarget(),
		LastSyncedAt:       u.LastSyncedAt,
		CreatedAt:          u.CreatedAt,
	}
}
