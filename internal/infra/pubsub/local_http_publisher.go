package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "nutriplan/internal/delivery/context"
	"nutriplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultLocalTopic   = "plans"
	localPublishTimeout = 10 * time.Second
)

// PubSubPushMessage is the body Cloud Pub/Sub posts to push subscribers.
// Data is base64 encoded by encoding/json.
type PubSubPushMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime time.Time         `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher pushes plan events straight to a subscriber endpoint for development
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	client       *http.Client
	now          func() time.Time
	logger       *slog.Logger
}

// NewLocalHTTPPublisher posts push-formatted plan events to endpoint
func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = defaultLocalTopic
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-sub",
		client:       &http.Client{Timeout: localPublishTimeout},
		now:          time.Now,
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishPlanGenerated(ctx context.Context, event *service.PlanGeneratedEvent) error {
	msg, err := newPlanMessage(event)
	if err != nil {
		return err
	}

	var push PubSubPushMessage
	push.Subscription = p.subscription
	push.Message.Data = msg.data
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = p.now().UTC()

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push plan event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("subscriber returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("Plan event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", push.Message.MessageID),
		slog.String("fingerprint", event.Fingerprint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
