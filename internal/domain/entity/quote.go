// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is the lifecycle state of a quote header.
type QuoteStatus string

const (
	// QuoteStatusDraft is the single mutable quote-in-progress per user,
	// equivalent to a cart. Line items may only be written under a draft.
	QuoteStatusDraft QuoteStatus = "draft"

	// QuoteStatusPending is a submitted quote awaiting the sales team.
	QuoteStatusPending QuoteStatus = "pending"

	// QuoteStatusApproved and QuoteStatusRejected are terminal states set
	// by back-office processes outside this service.
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// IsMutable reports whether line items may still be written under the quote.
func (s QuoteStatus) IsMutable() bool {
	return s == QuoteStatusDraft
}

// Quote is a quote request header owned by a single user.
// Invariant: a user has at most one Quote in draft status at any time.
type Quote struct {
	ID                uuid.UUID   `json:"id"`                 // The Global Unique Identifier (GUID) for the quote.
	UserID            uuid.UUID   `json:"user_id"`            // The account that owns this quote.
	Status            QuoteStatus `json:"status"`             // Lifecycle state; see QuoteStatus.
	TotalItems        int         `json:"total_items"`        // Denormalized line-item count, set on submission.
	AdditionalRemarks string      `json:"additional_remarks"` // Free-text delivery or customization notes.
	CreatedAt         time.Time   `json:"created_at"`         // Timestamp of when the quote was created.
	UpdatedAt         time.Time   `json:"updated_at"`         // Timestamp of the last modification.
}

// Reference returns the short human-facing reference for a submitted quote,
// the first UUID group, as quoted back to the customer.
func (q *Quote) Reference() string {
	return q.ID.String()[:8]
}

// QuoteItem is one product+quantity line belonging to a quote header.
// Invariants: Quantity >= 1, and at most one line per (QuoteID, ProductID).
type QuoteItem struct {
	QuoteID     uuid.UUID `json:"quote_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"` // Denormalized so submitted quotes render without the catalogue.
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}
