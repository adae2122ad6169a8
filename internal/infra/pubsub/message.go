package pubsub

import (
	"encoding/json"

	"nutriplan/internal/domain/constants"
	"nutriplan/internal/domain/service"

	"github.com/pkg/errors"
)

// planMessage is the transport-neutral form of a plan.generated event.
type planMessage struct {
	data       []byte
	attributes map[string]string
	// ordering keeps the events of one profile in publish order
	orderingKey string
}

func newPlanMessage(event *service.PlanGeneratedEvent) (*planMessage, error) {
	if event == nil {
		return nil, errors.New("plan event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode plan event")
	}

	attributes := map[string]string{
		"type":        constants.PlanGeneratedEventType,
		"fingerprint": event.Fingerprint,
		"language":    event.Language,
		"goal":        event.Goal,
		"life_stage":  event.LifeStage,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &planMessage{data: data, attributes: attributes, orderingKey: event.Fingerprint}, nil
}
