package pubsub

import (
	"context"
	"log/slog"

	"nutriplan/config"
	"nutriplan/internal/domain/constants"
	"nutriplan/internal/domain/service"
	"nutriplan/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const providerNoop = "noop"

// noopPublisher drops plan events when no provider is configured
type noopPublisher struct{}

func (noopPublisher) PublishPlanGenerated(context.Context, *service.PlanGeneratedEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}

// instrumentedPublisher counts every publish by provider and outcome
type instrumentedPublisher struct {
	service.EventPublisher
	provider string
	metrics  *metrics.Metrics
}

func (p *instrumentedPublisher) PublishPlanGenerated(ctx context.Context, event *service.PlanGeneratedEvent) error {
	err := p.EventPublisher.PublishPlanGenerated(ctx, event)
	if err != nil {
		p.metrics.IncPlanEvent(p.provider, metrics.OutcomeError)

		return err
	}
	p.metrics.IncPlanEvent(p.provider, metrics.OutcomeSuccess)

	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewEventPublisher selects the plan event transport from the pubsub config
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, provider, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Plan events configured", slog.String("provider", provider))

	if provider != providerNoop {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return publisher.Close()
			},
		})
	}

	return &instrumentedPublisher{EventPublisher: publisher, provider: provider, metrics: params.Metrics}, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, string, error) {
	if cfg == nil || cfg.Provider == "" {
		return noopPublisher{}, providerNoop, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, "", errors.New("local endpoint is required for local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger), cfg.Provider, nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, "", errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, "", errors.New("topic ID is required for google provider")
		}

		publisher, err := NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, "", err
		}

		return publisher, cfg.Provider, nil

	default:
		return nil, "", errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the plan event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
