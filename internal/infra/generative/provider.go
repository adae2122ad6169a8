// Package generative provides the text generation backends.
package generative

import (
	"context"
	"log/slog"

	"nutriplan/config"
	"nutriplan/internal/domain/lifecycle"
	"nutriplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeneratorParams holds dependencies for the TextGenerator, injected by Fx
type GeneratorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTextGenerator creates the TextGenerator for the configured provider
func NewTextGenerator(params GeneratorParams) (service.TextGenerator, error) {
	cfg := params.Config.Generative
	logger := params.Logger

	if cfg == nil {
		logger.Warn("Generative backend not configured")

		return NewUnconfiguredGenerator(), nil
	}

	switch cfg.Provider {
	case config.GenerativeProviderGemini, "":
		if cfg.APIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, plan generation disabled")

			return NewUnconfiguredGenerator(), nil
		}
		logger.Info("Using Gemini REST generator", slog.String("model", cfg.Model))

		return NewGeminiGenerator(cfg.BaseURL, cfg.Model, cfg.APIKey, cfg.Timeout, logger), nil

	case config.GenerativeProviderVertex:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		generator, err := NewVertexGenerator(ctx, cfg.ProjectID, cfg.Location, cfg.CredentialsFile, cfg.Model)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Vertex AI generator",
			slog.String("project_id", cfg.ProjectID),
			slog.String("location", cfg.Location),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing Vertex AI client")

				return generator.Close()
			},
		})

		return generator, nil

	case config.GenerativeProviderNone:
		logger.Info("Generative provider disabled")

		return NewUnconfiguredGenerator(), nil

	default:
		return nil, errors.Errorf("unknown generative provider: %s", cfg.Provider)
	}
}

// Module provides the generative FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTextGenerator),
)
