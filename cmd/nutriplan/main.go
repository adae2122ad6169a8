package main

import (
	"context"
	"log/slog"
	"os"

	"nutriplan/config"
	"nutriplan/internal/delivery"
	"nutriplan/internal/delivery/http"
	"nutriplan/internal/delivery/http/router/handler"
	"nutriplan/internal/infra/generative"
	logs "nutriplan/internal/infra/log"
	"nutriplan/internal/infra/metrics"
	"nutriplan/internal/infra/persistence"
	"nutriplan/internal/infra/pubsub"
	"nutriplan/internal/infra/qrcode"
	"nutriplan/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env", slog.Any("error", err))
	}

	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
		),
		persistence.Module,
		generative.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlanCacheService,
			impl.NewPlanGenerationService,
			impl.NewPlannerService,
			impl.NewGenerativeService,
			impl.NewNutritionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNutritionHandler,
			handler.NewPlanHandler,
			handler.NewGeminiHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
