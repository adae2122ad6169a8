package service

import (
	"context"

	"nutriplan/internal/errors"
)

// MIMETypeJSON asks the backend for a JSON response.
const MIMETypeJSON = "application/json"

// ErrEmptyResponse is returned when the backend answered without text.
var ErrEmptyResponse = errors.New("empty response from model")

// GenerationConfig is the configuration bag forwarded to the backend.
type GenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	ResponseMIMEType string   `json:"responseMimeType,omitempty"`
}

// GenerationRequest is one instruction for the generative backend.
type GenerationRequest struct {
	Prompt string           `json:"prompt"`
	Config GenerationConfig `json:"config"`
}

// TextGenerator is a generative text backend.
type TextGenerator interface {
	// GenerateText returns the text of the first candidate.
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}

// GeneratorError is a failure reported by the backend itself.
type GeneratorError struct {
	StatusCode int
	Message    string
}

func (e *GeneratorError) Error() string {
	return e.Message
}
