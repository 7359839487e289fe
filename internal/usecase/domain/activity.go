// Package domain contains application usecases orchestrating registry logic by activity.
package domain

import (
	"context"
	"fmt"
	"strings"

	"school-activities/internal/entities"
)

// ListActivities returns every activity keyed by name.
func (u *Usecase) ListActivities(ctx context.Context) (map[string]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListActivities(ctx)
}

// SignUp enrolls email in an activity after input validation. The email is an
// untyped string; nothing beyond non-empty is checked.
func (u *Usecase) SignUp(ctx context.Context, activity, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	activity = strings.TrimSpace(activity)
	email = strings.TrimSpace(email)
	if activity == "" {
		u.log.Errorw("failed to sign up: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to sign up: missing email", "activity", activity)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.SignUp(ctx, activity, email)
}

// Unregister removes email from an activity roster.
func (u *Usecase) Unregister(ctx context.Context, activity, email string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	activity = strings.TrimSpace(activity)
	email = strings.TrimSpace(email)
	if activity == "" {
		u.log.Errorw("failed to unregister: missing activity name")
		return nil, fmt.Errorf("%w: activity name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		u.log.Errorw("failed to unregister: missing email", "activity", activity)
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.Unregister(ctx, activity, email)
}
