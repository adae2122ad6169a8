// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nutriplan/internal/domain/entity"
)

// PlanRepository is the append-only store behind the plan cache.
type PlanRepository interface {
	// EnsureSchema creates the plans table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Insert appends a record and returns the stored row.
	// A nil or empty fingerprint is stored as NULL.
	Insert(ctx context.Context, record *entity.PlanRecord) (*entity.PlanRecord, error)

	// FindLatest returns the newest record with the given fingerprint,
	// or nil when there is none.
	FindLatest(ctx context.Context, fingerprint string) (*entity.PlanRecord, error)

	// FindLatestAny returns the newest record overall, or nil when the store is empty.
	FindLatestAny(ctx context.Context) (*entity.PlanRecord, error)
}
