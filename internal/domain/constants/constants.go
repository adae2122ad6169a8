// Package constants holds values shared across layers.
package constants

// PubSub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PlanGeneratedEventType is the type attribute of plan events.
const PlanGeneratedEventType = "plan.generated"
