// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrQuoteNotFound is a domain-specific error returned when a quote header is not found.
var ErrQuoteNotFound = errors.New("quote not found")

// ErrNoDraftQuote is returned when a user has no draft-status quote header.
var ErrNoDraftQuote = errors.New("no draft quote for user")

// QuoteRepository defines the standard operations for quote header persistence.
// The application layer depends on this interface, not the concrete implementation.
type QuoteRepository interface {
	// FindDraftByUser retrieves the unique draft-status header for a user.
	// Returns ErrNoDraftQuote when the user has no draft.
	FindDraftByUser(ctx context.Context, userID uuid.UUID) (*entity.Quote, error)

	// CreateDraft atomically gets-or-inserts the draft header for a user.
	// When a concurrent insert wins the race on the one-draft-per-user
	// constraint, the winning row is returned instead of an error.
	CreateDraft(ctx context.Context, userID uuid.UUID) (*entity.Quote, error)

	// CreatePending inserts a header directly in pending status. This is the
	// submit recovery path used when no draft exists in the store.
	CreatePending(ctx context.Context, quote *entity.Quote) error

	// MarkPending transitions a draft header to pending, setting the
	// denormalized item count and remarks in the same update.
	MarkPending(ctx context.Context, quoteID uuid.UUID, totalItems int, remarks string) error

	// FindByID retrieves a single header by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)

	// FindSubmittedByUser retrieves all non-draft headers for a user, newest first.
	FindSubmittedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error)
}

// QuoteItemRepository defines the operations for quote line-item persistence.
type QuoteItemRepository interface {
	// UpsertIncrement inserts a line item, or increments the stored quantity
	// when a row for (quote, product) already exists.
	UpsertIncrement(ctx context.Context, item *entity.QuoteItem) error

	// UpdateQuantity overwrites the stored quantity for a line item.
	UpdateQuantity(ctx context.Context, quoteID uuid.UUID, productID string, quantity int) error

	// Delete removes the line item matching (quote, product).
	Delete(ctx context.Context, quoteID uuid.UUID, productID string) error

	// DeleteAll removes every line item under a header. The header itself
	// is retained so its identity stays stable for subsequent adds.
	DeleteAll(ctx context.Context, quoteID uuid.UUID) error

	// FindByQuote retrieves all line items under a header, oldest first.
	FindByQuote(ctx context.Context, quoteID uuid.UUID) ([]*entity.QuoteItem, error)

	// CreateBatch inserts a set of line items, used by the submit fallback
	// to backfill a pending header from the in-memory projection.
	CreateBatch(ctx context.Context, items []*entity.QuoteItem) error
}
