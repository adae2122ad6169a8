package postgres

import (
	"context"
	"time"

	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/infra/persistence/model"
	"nutriplan/internal/infra/persistence/schema"

	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db     *gorm.DB
	schema schema.Guard
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// EnsureSchema creates the plans table and its index once per process.
func (repo *planRepository) EnsureSchema(ctx context.Context) error {
	return repo.schema.Ensure(ctx, func(ctx context.Context) error {
		if err := repo.db.WithContext(ctx).AutoMigrate(&model.PlanModel{}); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to ensure plans table")
		}

		return nil
	})
}

// Insert appends a plan record and returns the stored row.
func (repo *planRepository) Insert(ctx context.Context, record *entity.PlanRecord) (*entity.PlanRecord, error) {
	if record == nil || len(record.Payload) == 0 {
		return nil, domainerrors.ErrPlanMissing
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	planM := model.FromPlanRecord(record)
	// id and created_at are always assigned on insert
	planM.ID = 0
	planM.CreatedAt = time.Time{}

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrPlanMissing.WrapMessage("plan_data is required")
		}
		if isInvalidJSON(err) {
			return nil, domainerrors.ErrPlanMissing.WrapMessage("plan_data is not valid JSON")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert plan")
	}

	return planM.ToPlanRecord(), nil
}

// FindLatest returns the newest plan stored under fingerprint.
func (repo *planRepository) FindLatest(ctx context.Context, fingerprint string) (*entity.PlanRecord, error) {
	if fingerprint == "" {
		return repo.FindLatestAny(ctx)
	}

	return repo.findLatest(ctx, repo.db.Where("profile_hash = ?", fingerprint))
}

// FindLatestAny returns the newest plan overall.
func (repo *planRepository) FindLatestAny(ctx context.Context) (*entity.PlanRecord, error) {
	return repo.findLatest(ctx, repo.db)
}

func (repo *planRepository) findLatest(ctx context.Context, query *gorm.DB) (*entity.PlanRecord, error) {
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var planModels []*model.PlanModel
	if err := query.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&planModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest plan")
	}

	if len(planModels) == 0 {
		return nil, nil
	}

	return planModels[0].ToPlanRecord(), nil
}
