package impl

import (
	"context"
	"log/slog"
	"time"

	"nutriplan/config"
	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/catalog"
	"nutriplan/internal/domain/entity"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/nutrition"
	"nutriplan/internal/domain/profile"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPersistTimeout = 15 * time.Second
	dailyTopNutrients     = 3
)

// plannerService implements the PlannerUsecase interface.
type plannerService struct {
	generation     usecase.PlanGenerationUsecase
	cache          usecase.PlanCacheUsecase
	publisher      service.EventPublisher
	persistTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
	// background runs detached work. Tests run it inline.
	background func(fn func())
}

// PlannerServiceParams holds dependencies for PlannerService, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	Generation usecase.PlanGenerationUsecase
	Cache      usecase.PlanCacheUsecase
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPlannerService is the constructor for plannerService.
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	timeout := defaultPersistTimeout
	if params.Config != nil && params.Config.Planner != nil && params.Config.Planner.PersistTimeout > 0 {
		timeout = params.Config.Planner.PersistTimeout
	}

	return &plannerService{
		generation:     params.Generation,
		cache:          params.Cache,
		publisher:      params.Publisher,
		persistTimeout: timeout,
		logger:         params.Logger,
		now:            time.Now,
		background:     func(fn func()) { go fn() },
	}
}

func (srv *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreatePlan validates in and returns a cached or freshly generated plan.
func (srv *plannerService) CreatePlan(ctx context.Context, in profile.Input) (*usecase.PlanResult, error) {
	if errs := profile.Validate(in); len(errs) > 0 {
		fields := make([]domainerrors.FieldError, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, domainerrors.FieldError{Field: e.Field, Message: e.Message})
		}
		srv.log(ctx).Debug("Profile rejected", slog.Any("errors", profile.Messages(errs)))

		return nil, domainerrors.NewValidationError(fields)
	}

	p := in.Profile()
	generated, err := srv.generation.GeneratePlan(ctx, p)
	if err != nil {
		return nil, err
	}

	if !generated.Cached {
		// the response never waits on the store or the broker
		detached := context.WithoutCancel(ctx)
		srv.background(func() {
			srv.persist(detached, generated, p)
		})
	}

	result := render(generated.Plan, p.Language, p.Duration)
	result.Fingerprint = generated.Fingerprint
	result.Cached = generated.Cached

	return result, nil
}

// LatestPlan returns the most recently stored plan rendered for lang.
func (srv *plannerService) LatestPlan(ctx context.Context, lang entity.Language, durationWeeks int) *usecase.PlanResult {
	plan := srv.cache.Get(ctx, "")
	if plan == nil || len(plan.Schedule) == 0 {
		return nil
	}
	// unset or out-of-range view options fall back to the profile defaults
	weeks := float64(durationWeeks)
	view := profile.Sanitize(profile.Input{Duration: &weeks, Language: string(lang)})

	result := render(plan, view.Language, view.Duration)
	result.Cached = true

	return result
}

func (srv *plannerService) persist(ctx context.Context, generated *usecase.GeneratedPlan, p entity.UserProfile) {
	ctx, cancel := context.WithTimeout(ctx, srv.persistTimeout)
	defer cancel()

	srv.cache.Put(ctx, generated.Plan, generated.Fingerprint)

	if srv.publisher == nil {
		return
	}

	event := &service.PlanGeneratedEvent{
		RequestID:   deliverycontext.RequestIDFrom(ctx),
		Fingerprint: generated.Fingerprint,
		Language:    string(p.Language),
		Goal:        string(p.Goal),
		LifeStage:   string(p.LifeStage),
		GeneratedAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishPlanGenerated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish plan event",
			slog.Any("error", err),
			slog.String("fingerprint", generated.Fingerprint))
	}
}

// render derives the shopping list, daily totals and share text of plan.
func render(plan *entity.WeeklyPlan, lang entity.Language, durationWeeks int) *usecase.PlanResult {
	matcher := nutrition.NewMixMatcher(catalog.Nuts(lang))
	rda := catalog.RDA()
	shopping := matcher.ShoppingList(plan.Schedule, durationWeeks)

	daily := make([]usecase.DayNutrients, 0, len(plan.Schedule))
	for _, day := range plan.Schedule {
		totals := matcher.DailyNutrients(day.Mix)
		daily = append(daily, usecase.DayNutrients{
			Day:               day.Day,
			Nutrients:         totals,
			TopMicronutrients: nutrition.TopMicronutrients(totals, rda, dailyTopNutrients),
		})
	}

	return &usecase.PlanResult{
		Plan:         plan,
		ShoppingList: shopping,
		Daily:        daily,
		ShareText:    nutrition.PlanText(plan, shopping, lang),
	}
}
