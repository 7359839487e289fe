// Package repository contains repository interfaces for registry backends.
package repository

import (
	"context"

	"school-activities/internal/entities"
)

// LifecycleInterface describes backend startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ActivityInterface exposes registry operations.
type ActivityInterface interface {
	ListActivities(ctx context.Context) (map[string]entities.Activity, error)
	SignUp(ctx context.Context, activity, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activity, email string) (*entities.Activity, error)
}
