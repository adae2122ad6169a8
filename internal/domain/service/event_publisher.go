package service

import (
	"context"
	"time"
)

// PlanGeneratedEvent is published after a fresh plan was generated
type PlanGeneratedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Fingerprint string    `json:"fingerprint"`
	Language    string    `json:"language"`
	Goal        string    `json:"goal"`
	LifeStage   string    `json:"life_stage"`
	GeneratedAt time.Time `json:"generated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlanGenerated publishes a plan event for downstream consumers
	PublishPlanGenerated(ctx context.Context, event *PlanGeneratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
