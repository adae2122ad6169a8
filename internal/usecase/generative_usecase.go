package usecase

import (
	"context"

	"nutriplan/internal/domain/service"
)

// GenerativeUsecase forwards raw prompts to the generative backend.
type GenerativeUsecase interface {
	// Generate returns the backend text for req. An empty prompt is
	// rejected with ErrPromptMissing.
	Generate(ctx context.Context, req service.GenerationRequest) (string, error)
}
