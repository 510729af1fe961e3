package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/trainwell/vitals-api/internal/domain"
)

func TestUserServiceCreateDefaults(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone: "Europe/Warsaw",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Create() did not assign an ID")
	}
	if user.Timezone != "Europe/Warsaw" {
		t.Errorf("Timezone = %q, want Europe/Warsaw", user.Timezone)
	}
	if user.TargetSleepMinutes != domain.DefaultTargetSleepMinutes {
		t.Errorf("TargetSleepMinutes = %d, want %d", user.TargetSleepMinutes, domain.DefaultTargetSleepMinutes)
	}
}

func TestUserServiceCreateCustomTarget(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	target := 420
	user, err := svc.Create(context.Background(), &domain.CreateUserRequest{
		Timezone:           "UTC",
		TargetSleepMinutes: &target,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.TargetSleepMinutes != 420 {
		t.Errorf("TargetSleepMinutes = %d, want 420", user.TargetSleepMinutes)
	}
}

func TestUserServiceGetByIDNotFound(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
