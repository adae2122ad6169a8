package generative

import (
	"context"

	domainerrors "nutriplan/internal/domain/errors"
	"nutriplan/internal/domain/service"
)

// unconfiguredGenerator is used when no credential is available
type unconfiguredGenerator struct{}

// NewUnconfiguredGenerator returns a generator that always fails with ErrGeneratorNotConfigured
func NewUnconfiguredGenerator() service.TextGenerator {
	return unconfiguredGenerator{}
}

func (unconfiguredGenerator) Name() string {
	return "none"
}

func (unconfiguredGenerator) GenerateText(context.Context, service.GenerationRequest) (string, error) {
	return "", domainerrors.ErrGeneratorNotConfigured
}
