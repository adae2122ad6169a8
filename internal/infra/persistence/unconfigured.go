package persistence

import (
	"context"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
)

// unconfiguredRepository is used when no connection string is available
type unconfiguredRepository struct{}

// NewUnconfiguredRepository returns a store whose every call fails with ErrStoreNotConfigured
func NewUnconfiguredRepository() repository.PlanRepository {
	return unconfiguredRepository{}
}

func (unconfiguredRepository) EnsureSchema(context.Context) error {
	return domainerrors.ErrStoreNotConfigured
}

func (unconfiguredRepository) Insert(context.Context, *entity.PlanRecord) (*entity.PlanRecord, error) {
	return nil, domainerrors.ErrStoreNotConfigured
}

func (unconfiguredRepository) FindLatest(context.Context, string) (*entity.PlanRecord, error) {
	return nil, domainerrors.ErrStoreNotConfigured
}

func (unconfiguredRepository) FindLatestAny(context.Context) (*entity.PlanRecord, error) {
	return nil, domainerrors.ErrStoreNotConfigured
}
