// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitQuoteInput carries the contact fields and remarks captured on the
// quote submission form. The contact fields are upserted into the profile
// before the draft transitions to pending.
type SubmitQuoteInput struct {
	CompanyName       string
	ContactPerson     string
	Email             string
	Phone             string
	Address           string
	GSTNumber         string
	AdditionalRemarks string
}

// --- Output DTOs ---

// SubmitQuoteOutput returns the submitted header's identity. Reference is
// the short form quoted back to the customer.
type SubmitQuoteOutput struct {
	QuoteID   uuid.UUID
	Reference string
}

// CartUsecase is the quote-request cart contract. Each user's cart is the
// line-item set of their single draft quote; the in-memory projection the
// operations return is derived from the store, never authoritative.
//
// All operations take an explicit user ID and are serialized per user, so
// two overlapping requests for the same user never interleave store writes.
type CartUsecase interface {
	// Items returns the user's cart projection, loading it from the store
	// on first access.
	Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)

	// Refresh rebuilds the projection from the store. Called on login.
	Refresh(ctx context.Context, userID uuid.UUID) error

	// Forget drops the cached projection without touching the store.
	// Called on logout.
	Forget(userID uuid.UUID)

	// AddItem adds quantity of a product to the draft, creating the draft
	// first when needed, and returns the reconciled projection.
	AddItem(ctx context.Context, userID uuid.UUID, productID string, quantity int) ([]entity.CartItem, error)

	// RemoveItem deletes the product's line item. A user without a draft
	// gets their current (empty) projection back.
	RemoveItem(ctx context.Context, userID uuid.UUID, productID string) ([]entity.CartItem, error)

	// UpdateQuantity overwrites the stored quantity. A quantity below one
	// removes the line item instead.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) ([]entity.CartItem, error)

	// Clear deletes every line item under the draft, keeping the header.
	Clear(ctx context.Context, userID uuid.UUID) error

	// ItemCount returns the sum of projection quantities.
	ItemCount(ctx context.Context, userID uuid.UUID) (int, error)

	// Submit turns the draft into a pending quote request and clears the
	// projection.
	Submit(ctx context.Context, userID uuid.UUID, input *SubmitQuoteInput) (*SubmitQuoteOutput, error)
}
