package service

import (
	"context"
)

// QuoteSubmittedEvent is published to the sales back office when a user
// submits a quote request. Line items are flattened into display strings so
// the consumer needs no catalogue access.
type QuoteSubmittedEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	QuoteID     string   `json:"quote_id"`
	Reference   string   `json:"reference"` // Short reference quoted to the customer.
	UserID      string   `json:"user_id"`
	CompanyName string   `json:"company_name"`
	ContactName string   `json:"contact_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	TotalItems  int      `json:"total_items"`
	Items       []string `json:"items"` // "3 x Auditorium Chair ..." lines.
	Remarks     string   `json:"remarks,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuoteSubmitted publishes a quote-submitted event for the sales team.
	PublishQuoteSubmitted(ctx context.Context, event *QuoteSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
