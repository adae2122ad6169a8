// Package persistence selects the plan store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"nutriplan/config"
	"nutriplan/internal/domain/repository"
	"nutriplan/internal/infra/metrics"
	"nutriplan/internal/infra/persistence/postgres"
	"nutriplan/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the plan store, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewPlanRepository creates the plan store for the configured driver
func NewPlanRepository(params RepositoryParams) (repository.PlanRepository, error) {
	cfg := params.Config.Database
	logger := params.Logger

	driver := config.DriverPostgres
	if cfg != nil && cfg.Driver != "" {
		driver = cfg.Driver
	}

	switch driver {
	case config.DriverPostgres:
		if cfg == nil || cfg.URL == "" {
			logger.Warn("DATABASE_URL not set, plan store disabled")

			return NewUnconfiguredRepository(), nil
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Metrics:   params.Metrics,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL plan store")

		return postgres.NewPlanRepository(db), nil

	case config.DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = sqlite.MemoryPath
		}

		db, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(db.Close())
			},
		})
		logger.Info("Using SQLite plan store", slog.String("path", path))

		return sqlite.NewPlanRepository(db), nil

	default:
		return nil, errors.Errorf("unknown database driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPlanRepository),
)
