// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderLocal publishes quote events to a local HTTP endpoint.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes quote events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// QuoteEventType is the event name attached to quote-submitted messages.
const QuoteEventType = "quote.submitted"
