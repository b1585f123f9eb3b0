package usecase

import (
	"context"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteDetailOutput pairs a submitted header with its line items.
type QuoteDetailOutput struct {
	Quote *entity.Quote
	Items []*entity.QuoteItem
}

// QuoteUsecase exposes the submitted-quote dashboard operations. Every
// operation is ownership-checked against the requesting user.
type QuoteUsecase interface {
	// ListSubmitted returns the user's non-draft quote headers, newest first.
	ListSubmitted(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error)

	// GetQuote returns one header with its line items.
	GetQuote(ctx context.Context, userID, quoteID uuid.UUID) (*QuoteDetailOutput, error)

	// QuoteReferenceQR returns a PNG QR code encoding the quote's tracking URL.
	QuoteReferenceQR(ctx context.Context, userID, quoteID uuid.UUID) ([]byte, error)
}
