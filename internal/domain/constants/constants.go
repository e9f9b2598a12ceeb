// Package constants collects identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers. An empty provider dispatches events in-process.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Engagement event types.
const (
	EventMatchAccepted    = "match.accepted"
	EventMatchDeclined    = "match.declined"
	EventSessionScheduled = "session.scheduled"
	EventSessionCompleted = "session.completed"
)
