// Package postgres contains the concrete implementation of the plan store using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"nutriplan/config"
	"nutriplan/internal/domain/lifecycle"
	"nutriplan/internal/errors"
	"nutriplan/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// poolStatsName labels the plan store pool in go_sql_* metrics
const poolStatsName = "plans"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// New opens the PostgreSQL connection described by the database section
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database
	if dbCfg == nil || dbCfg.URL == "" {
		return nil, errors.New("postgres connection string is empty")
	}

	db, err := Open(dbCfg.URL, newGormSlogLogger(params.Logger, params.Config.Env.Debug))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	if params.Metrics != nil {
		if err := params.Metrics.Registry().Register(collectors.NewDBStatsCollector(sqlDB, poolStatsName)); err != nil {
			return nil, errors.Wrap(err, "register plan store pool stats")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// the store stays usable when the database comes up later
			if err := sqlDB.PingContext(ctx); err != nil {
				params.Logger.Warn("PostgreSQL not reachable at startup", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Open connects GORM to dsn with per-statement transactions disabled
func Open(dsn string, gormLogger gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		// Every write is a single-row INSERT
		SkipDefaultTransaction: true,
		// reachability is checked by the start hook
		DisableAutomaticPing: true,
		TranslateError:       true,
		Logger:               gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}
