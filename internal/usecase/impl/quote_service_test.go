package impl

import (
	"context"
	"testing"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	mockRepo "seatech/internal/mocks/repository"
	mockService "seatech/internal/mocks/service"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quoteServiceFixtures holds all test dependencies for quote service tests.
type quoteServiceFixtures struct {
	service   usecase.QuoteUsecase
	quoteRepo *mockRepo.MockQuoteRepository
	itemRepo  *mockRepo.MockQuoteItemRepository
	qrService *mockService.MockQRCodeService
}

func createTestQuoteService(t *testing.T) quoteServiceFixtures {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	itemRepo := mockRepo.NewMockQuoteItemRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	service := NewQuoteService(QuoteServiceParams{
		QuoteRepo: quoteRepo,
		ItemRepo:  itemRepo,
		QRService: qrService,
		Logger:    newDiscardLogger(),
	})

	return quoteServiceFixtures{
		service:   service,
		quoteRepo: quoteRepo,
		itemRepo:  itemRepo,
		qrService: qrService,
	}
}

func TestQuoteService_ListSubmitted_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Quote{
		{ID: uuid.New(), UserID: userID, Status: entity.QuoteStatusPending},
		{ID: uuid.New(), UserID: userID, Status: entity.QuoteStatusApproved},
	}

	fx.quoteRepo.EXPECT().FindSubmittedByUser(ctx, userID).Return(expected, nil)

	quotes, err := fx.service.ListSubmitted(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, quotes)
}

func TestQuoteService_GetQuote_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	quote := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusPending, TotalItems: 3}
	items := []*entity.QuoteItem{
		{QuoteID: quoteID, ProductID: "p-1", ProductName: "Revolving Chair", Quantity: 3},
	}

	fx.quoteRepo.EXPECT().FindByID(ctx, quoteID).Return(quote, nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).Return(items, nil)

	output, err := fx.service.GetQuote(ctx, userID, quoteID)

	require.NoError(t, err)
	assert.Equal(t, quote, output.Quote)
	assert.Equal(t, items, output.Items)
}

func TestQuoteService_GetQuote_NotFound(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	quoteID := uuid.New()

	fx.quoteRepo.EXPECT().FindByID(ctx, quoteID).Return(nil, repository.ErrQuoteNotFound)

	_, err := fx.service.GetQuote(ctx, uuid.New(), quoteID)

	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}

func TestQuoteService_GetQuote_OtherUsersQuoteReadsAsNotFound(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	quoteID := uuid.New()
	quote := &entity.Quote{ID: quoteID, UserID: uuid.New(), Status: entity.QuoteStatusPending}

	fx.quoteRepo.EXPECT().FindByID(ctx, quoteID).Return(quote, nil)

	_, err := fx.service.GetQuote(ctx, uuid.New(), quoteID)

	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}

func TestQuoteService_QuoteReferenceQR_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	quote := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusPending}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.quoteRepo.EXPECT().FindByID(ctx, quoteID).Return(quote, nil)
	fx.qrService.EXPECT().GenerateQuoteQR(quote.Reference()).Return(png, nil)

	got, err := fx.service.QuoteReferenceQR(ctx, userID, quoteID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestQuoteService_QuoteReferenceQR_OwnershipChecked(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	quoteID := uuid.New()
	quote := &entity.Quote{ID: quoteID, UserID: uuid.New(), Status: entity.QuoteStatusPending}

	fx.quoteRepo.EXPECT().FindByID(ctx, quoteID).Return(quote, nil)

	_, err := fx.service.QuoteReferenceQR(ctx, uuid.New(), quoteID)

	assert.ErrorIs(t, err, domainerrors.ErrQuoteNotFound)
}
