package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"nutriplan/config"
	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/metrics"
	"nutriplan/internal/infra/retry"
	"nutriplan/internal/usecase"

	"go.uber.org/fx"
)

// planCacheService implements the PlanCacheUsecase interface.
type planCacheService struct {
	repo     repository.PlanRepository
	policy   retry.Policy
	metrics  *metrics.Metrics
	logger   *slog.Logger
	newTimer func() retry.Timer
}

// PlanCacheServiceParams holds dependencies for PlanCacheService, injected by Fx.
type PlanCacheServiceParams struct {
	fx.In

	Repo    repository.PlanRepository
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewPlanCacheService is the constructor for planCacheService.
func NewPlanCacheService(params PlanCacheServiceParams) usecase.PlanCacheUsecase {
	return &planCacheService{
		repo:    params.Repo,
		policy:  cachePolicy(params.Config),
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func cachePolicy(cfg *config.Config) retry.Policy {
	policy := retry.Policy{Attempts: 3, BaseDelay: 500 * time.Millisecond}
	if cfg != nil && cfg.Planner != nil {
		if cfg.Planner.CacheAttempts > 0 {
			policy.Attempts = cfg.Planner.CacheAttempts
		}
		if cfg.Planner.CacheBaseDelay > 0 {
			policy.BaseDelay = cfg.Planner.CacheBaseDelay
		}
	}

	return policy
}

func (srv *planCacheService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Save appends a plan payload without retrying.
func (srv *planCacheService) Save(ctx context.Context, plan json.RawMessage, fingerprint string) (*entity.PlanRecord, error) {
	if isNullPayload(plan) {
		return nil, domainerrors.ErrPlanMissing
	}

	record, err := srv.repo.Insert(ctx, &entity.PlanRecord{
		Fingerprint: nullableFingerprint(fingerprint),
		Payload:     plan,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save plan", slog.Any("error", err), slog.String("fingerprint", fingerprint))

		return nil, err
	}

	srv.metrics.IncPlansStored()
	srv.log(ctx).Debug("Plan saved", slog.Int64("id", record.ID), slog.String("fingerprint", fingerprint))

	return record, nil
}

// Latest returns the newest payload for fingerprint without retrying.
func (srv *planCacheService) Latest(ctx context.Context, fingerprint string) (json.RawMessage, error) {
	record, err := srv.repo.FindLatest(ctx, fingerprint)
	if err != nil {
		srv.log(ctx).Error("Failed to load plan", slog.Any("error", err), slog.String("fingerprint", fingerprint))

		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return record.Payload, nil
}

// Get reads the newest plan for fingerprint under the cache retry policy.
// Exhausted retries and undecodable payloads read as no plan.
func (srv *planCacheService) Get(ctx context.Context, fingerprint string) *entity.WeeklyPlan {
	record, err := retry.Do(ctx, srv.policy, func(ctx context.Context) (*entity.PlanRecord, error) {
		return srv.repo.FindLatest(ctx, fingerprint)
	}, srv.retryOptions(ctx, "read")...)
	if err != nil {
		srv.metrics.IncCacheLookup(metrics.CacheError)
		srv.log(ctx).Warn("Plan cache read failed", slog.Any("error", err), slog.String("fingerprint", fingerprint))

		return nil
	}
	if record == nil {
		return nil
	}

	plan, err := record.Plan()
	if err != nil {
		srv.metrics.IncCacheLookup(metrics.CacheError)
		srv.log(ctx).Warn("Stored plan is not decodable", slog.Any("error", err), slog.Int64("id", record.ID))

		return nil
	}

	return plan
}

// Put stores plan under the cache retry policy. Failures are logged only.
func (srv *planCacheService) Put(ctx context.Context, plan *entity.WeeklyPlan, fingerprint string) {
	if plan == nil {
		return
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		srv.log(ctx).Error("Failed to encode plan", slog.Any("error", err))

		return
	}

	record, err := retry.Do(ctx, srv.policy, func(ctx context.Context) (*entity.PlanRecord, error) {
		return srv.repo.Insert(ctx, &entity.PlanRecord{
			Fingerprint: nullableFingerprint(fingerprint),
			Payload:     payload,
		})
	}, srv.retryOptions(ctx, "write")...)
	if err != nil {
		srv.log(ctx).Warn("Plan cache write failed", slog.Any("error", err), slog.String("fingerprint", fingerprint))

		return
	}

	srv.metrics.IncPlansStored()
	srv.log(ctx).Debug("Plan cached", slog.Int64("id", record.ID), slog.String("fingerprint", fingerprint))
}

func (srv *planCacheService) retryOptions(ctx context.Context, op string) []retry.Option {
	opts := []retry.Option{
		retry.WithPermanent(isPermanentStoreError),
		retry.WithNotify(func(attempt int, err error, wait time.Duration) {
			srv.log(ctx).Warn("Plan cache attempt failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.Any("error", err))
		}),
	}
	if srv.newTimer != nil {
		opts = append(opts, retry.WithTimer(srv.newTimer()))
	}

	return opts
}

// isPermanentStoreError reports errors a retry cannot fix.
func isPermanentStoreError(err error) bool {
	return errors.Is(err, domainerrors.ErrStoreNotConfigured) || errors.Is(err, domainerrors.ErrPlanMissing)
}

func nullableFingerprint(fingerprint string) *string {
	if fingerprint == "" {
		return nil
	}

	return &fingerprint
}

func isNullPayload(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
