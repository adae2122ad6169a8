package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nutriplan/internal/delivery/context"
	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/usecase"
)

// generativeService implements the GenerativeUsecase interface.
type generativeService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewGenerativeService is the constructor for generativeService.
func NewGenerativeService(generator service.TextGenerator, logger *slog.Logger) usecase.GenerativeUsecase {
	return &generativeService{
		generator: generator,
		logger:    logger,
	}
}

// Generate forwards req in a single attempt. Clients retry on their own.
func (srv *generativeService) Generate(ctx context.Context, req service.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", domainerrors.ErrPromptMissing
	}

	text, err := srv.generator.GenerateText(ctx, req)
	if err != nil {
		deliverycontext.Logger(ctx, srv.logger).Error("Generative request failed",
			slog.String("provider", srv.generator.Name()),
			slog.Any("error", err))

		return "", err
	}

	return text, nil
}
