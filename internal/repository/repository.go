// Package repository provides factory for registry backends.
package repository

import (
	"fmt"

	"school-activities/config"
	"school-activities/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all registry interfaces.
type Repository interface {
	LifecycleInterface
	ActivityInterface
}

// New constructs a registry backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown registry backend: %s", name)
	}
}
