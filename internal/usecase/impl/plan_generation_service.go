package impl

import (
	"context"
	"log/slog"
	"time"

	"nutriplan/config"
	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/profile"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/metrics"
	"nutriplan/internal/infra/retry"
	"nutriplan/internal/usecase"

	"go.uber.org/fx"
)

const defaultTemperature = 0.1

// planGenerationService implements the PlanGenerationUsecase interface.
type planGenerationService struct {
	cache       usecase.PlanCacheUsecase
	generator   service.TextGenerator
	policy      retry.Policy
	temperature float64
	metrics     *metrics.Metrics
	logger      *slog.Logger
	newTimer    func() retry.Timer
}

// PlanGenerationServiceParams holds dependencies for PlanGenerationService, injected by Fx.
type PlanGenerationServiceParams struct {
	fx.In

	Cache     usecase.PlanCacheUsecase
	Generator service.TextGenerator
	Config    *config.Config
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewPlanGenerationService is the constructor for planGenerationService.
func NewPlanGenerationService(params PlanGenerationServiceParams) usecase.PlanGenerationUsecase {
	srv := &planGenerationService{
		cache:       params.Cache,
		generator:   params.Generator,
		policy:      retry.Policy{Attempts: 3, BaseDelay: time.Second},
		temperature: defaultTemperature,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Planner != nil {
		if cfg.Planner.GenerationAttempts > 0 {
			srv.policy.Attempts = cfg.Planner.GenerationAttempts
		}
		if cfg.Planner.GenerationBaseDelay > 0 {
			srv.policy.BaseDelay = cfg.Planner.GenerationBaseDelay
		}
		if cfg.Planner.Temperature > 0 {
			srv.temperature = cfg.Planner.Temperature
		}
	}

	return srv
}

func (srv *planGenerationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// GeneratePlan returns the cached plan of p when it is complete and
// generates a new one otherwise.
func (srv *planGenerationService) GeneratePlan(ctx context.Context, p entity.UserProfile) (*usecase.GeneratedPlan, error) {
	fingerprint := profile.Fingerprint(p)
	logger := srv.log(ctx).With(slog.String("fingerprint", fingerprint))

	cached := srv.cache.Get(ctx, fingerprint)
	switch {
	case cached.IsComplete():
		srv.metrics.IncCacheLookup(metrics.CacheHit)
		logger.Debug("Serving cached plan")

		return &usecase.GeneratedPlan{Plan: cached, Fingerprint: fingerprint, Cached: true}, nil
	case cached != nil:
		srv.metrics.IncCacheLookup(metrics.CacheStale)
		logger.Info("Cached plan is incomplete, regenerating", slog.Int("days", len(cached.Schedule)))
	default:
		srv.metrics.IncCacheLookup(metrics.CacheMiss)
	}

	prompt, err := BuildPlanPrompt(p)
	if err != nil {
		return nil, err
	}

	temperature := srv.temperature
	seed := profile.Seed(p)
	req := service.GenerationRequest{
		Prompt: prompt,
		Config: service.GenerationConfig{
			Temperature:      &temperature,
			Seed:             &seed,
			ResponseMIMEType: service.MIMETypeJSON,
		},
	}

	opts := []retry.Option{
		retry.WithPermanent(isConfigurationError),
		retry.WithNotify(func(attempt int, err error, wait time.Duration) {
			logger.Warn("Plan generation attempt failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.Any("error", err))
		}),
	}
	if srv.newTimer != nil {
		opts = append(opts, retry.WithTimer(srv.newTimer()))
	}

	start := time.Now()
	plan, err := retry.Do(ctx, srv.policy, func(ctx context.Context) (*entity.WeeklyPlan, error) {
		return srv.generateOnce(ctx, req)
	}, opts...)
	srv.metrics.ObserveGeneration(time.Since(start))
	if err != nil {
		logger.Error("Plan generation failed", slog.Any("error", err))
		if isConfigurationError(err) {
			return nil, err
		}

		return nil, domainerrors.NewGenerationError(err)
	}

	logger.Info("Plan generated", slog.String("provider", srv.generator.Name()))

	return &usecase.GeneratedPlan{Plan: plan, Fingerprint: fingerprint}, nil
}

// generateOnce performs one backend call and validates its result.
func (srv *planGenerationService) generateOnce(ctx context.Context, req service.GenerationRequest) (*entity.WeeklyPlan, error) {
	provider := srv.generator.Name()

	text, err := srv.generator.GenerateText(ctx, req)
	if err != nil {
		srv.metrics.IncGenerationAttempt(provider, metrics.OutcomeError)

		return nil, err
	}

	plan, err := ParsePlan(text)
	if err != nil {
		srv.metrics.IncGenerationAttempt(provider, metrics.OutcomeMalformed)

		return nil, err
	}

	srv.metrics.IncGenerationAttempt(provider, metrics.OutcomeSuccess)

	return plan, nil
}

// isConfigurationError reports missing credentials or connection settings.
func isConfigurationError(err error) bool {
	return errors.Is(err, domainerrors.ErrGeneratorNotConfigured) || errors.Is(err, domainerrors.ErrStoreNotConfigured)
}
