package usecase

import (
	"context"

	"school-activities/internal/entities"
)

// ActivityUsecaseInterface abstracts registry operations for delivery layer.
type ActivityUsecaseInterface interface {
	ListActivities(ctx context.Context) (map[string]entities.Activity, error)
	SignUp(ctx context.Context, activity, email string) (*entities.Activity, error)
	Unregister(ctx context.Context, activity, email string) (*entities.Activity, error)
}
