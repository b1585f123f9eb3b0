package impl

import (
	"context"
	"log/slog"

	deliverycontext "seatech/internal/delivery/context"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/domain/service"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	quoteRepo repository.QuoteRepository
	itemRepo  repository.QuoteItemRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// QuoteServiceParams holds dependencies for quoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	QuoteRepo repository.QuoteRepository
	ItemRepo  repository.QuoteItemRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		quoteRepo: params.QuoteRepo,
		itemRepo:  params.ItemRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSubmitted retrieves the user's non-draft quote headers, newest first.
func (srv *quoteService) ListSubmitted(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error) {
	quotes, err := srv.quoteRepo.FindSubmittedByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list submitted quotes",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list submitted quotes")
	}

	return quotes, nil
}

// GetQuote retrieves one header with its line items, ownership-checked.
func (srv *quoteService) GetQuote(ctx context.Context, userID, quoteID uuid.UUID) (*usecase.QuoteDetailOutput, error) {
	quote, err := srv.findOwnedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	items, err := srv.itemRepo.FindByQuote(ctx, quoteID)
	if err != nil {
		srv.log(ctx).Error("Failed to load quote items",
			slog.Any("quote_id", quoteID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to load quote items")
	}

	return &usecase.QuoteDetailOutput{
		Quote: quote,
		Items: items,
	}, nil
}

// QuoteReferenceQR generates a PNG QR code for the quote's tracking URL.
func (srv *quoteService) QuoteReferenceQR(ctx context.Context, userID, quoteID uuid.UUID) ([]byte, error) {
	quote, err := srv.findOwnedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateQuoteQR(quote.Reference())
	if err != nil {
		srv.log(ctx).Error("Failed to generate quote QR code",
			slog.Any("quote_id", quoteID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to generate quote QR code")
	}

	return png, nil
}

func (srv *quoteService) findOwnedQuote(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindByID(ctx, quoteID)
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return nil, domainerrors.ErrQuoteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find quote")
	}

	// Ownership mismatch reads as not-found so quote IDs are not probeable.
	if quote.UserID != userID {
		return nil, domainerrors.ErrQuoteNotFound
	}

	return quote, nil
}
