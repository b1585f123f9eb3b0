package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	mockRepo "seatech/internal/mocks/repository"
	mockService "seatech/internal/mocks/service"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	quoteRepo   *mockRepo.MockQuoteRepository
	itemRepo    *mockRepo.MockQuoteItemRepository
	profileRepo *mockRepo.MockProfileRepository
	accountRepo *mockRepo.MockAccountRepository
	catalog     *mockService.MockProductCatalog
	publisher   *mockService.MockEventPublisher
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	itemRepo := mockRepo.NewMockQuoteItemRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	catalog := mockService.NewMockProductCatalog(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewCartService(CartServiceParams{
		TxManager:   txManager,
		QuoteRepo:   quoteRepo,
		ItemRepo:    itemRepo,
		ProfileRepo: profileRepo,
		AccountRepo: accountRepo,
		Catalog:     catalog,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		quoteRepo:   quoteRepo,
		itemRepo:    itemRepo,
		profileRepo: profileRepo,
		accountRepo: accountRepo,
		catalog:     catalog,
		publisher:   publisher,
	}
}

func TestCartService_Items_AnonymousRejected(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Items(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestCartService_Items_EmptyWithoutDraft(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()

	items, err := fx.service.Items(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, items)

	// The second read is served from the cached projection.
	items, err = fx.service.Items(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.catalog.EXPECT().Get("nope").Return(entity.Product{}, false)

	_, err := fx.service.AddItem(ctx, userID, "nope", 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), "p-1", 0)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_CreatesDraftAndHealsProfile(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()
	fx.accountRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.Account{ID: userID, Email: "buyer@example.com"}, nil)
	fx.profileRepo.EXPECT().EnsureExists(ctx, userID, "buyer@example.com").Return(nil)
	fx.quoteRepo.EXPECT().CreateDraft(ctx, userID).
		Return(&entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}, nil)
	fx.itemRepo.EXPECT().
		UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).
		Run(func(ctx context.Context, item *entity.QuoteItem) {
			assert.Equal(t, quoteID, item.QuoteID)
			assert.Equal(t, "p-1", item.ProductID)
			assert.Equal(t, "Revolving Chair", item.ProductName)
			assert.Equal(t, 2, item.Quantity)
		}).
		Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 2}}, nil)

	items, err := fx.service.AddItem(ctx, userID, "p-1", 2)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product, items[0].Product)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_AddItem_ProfileHealFailureIsNotFatal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()
	fx.accountRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrAccountNotFound)
	fx.profileRepo.EXPECT().EnsureExists(ctx, userID, "").Return(assert.AnError)
	fx.quoteRepo.EXPECT().CreateDraft(ctx, userID).
		Return(&entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 1}}, nil)

	items, err := fx.service.AddItem(ctx, userID, "p-1", 1)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_AddItem_RepeatAddsAccumulateInStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)

	// The store sums the two adds into a single line; the projection is
	// whatever comes back, not a local increment.
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 2}}, nil).Once()
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 5}}, nil).Once()

	items, err := fx.service.AddItem(ctx, userID, "p-1", 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	items, err = fx.service.AddItem(ctx, userID, "p-1", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_AddItem_ConcurrentFirstAddsShareOneDraft(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	var created atomic.Bool

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Quote, error) {
			if created.Load() {
				return draft, nil
			}

			return nil, repository.ErrNoDraftQuote
		})
	fx.accountRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrAccountNotFound).Once()
	fx.profileRepo.EXPECT().EnsureExists(ctx, userID, "").Return(nil).Once()

	// Every request races on a fresh user; the per-user guard serializes
	// them, so only the first may create the draft header.
	fx.quoteRepo.EXPECT().CreateDraft(ctx, userID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Quote, error) {
			created.Store(true)

			return draft, nil
		}).Once()

	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 1}}, nil)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.AddItem(ctx, userID, "p-1", 1)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestCartService_AddItem_DropsStaleProductReferences(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.catalog.EXPECT().Get("discontinued").Return(entity.Product{}, false)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{
			{QuoteID: quoteID, ProductID: "p-1", Quantity: 1},
			{QuoteID: quoteID, ProductID: "discontinued", Quantity: 4},
		}, nil)

	items, err := fx.service.AddItem(ctx, userID, "p-1", 1)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p-1", items[0].Product.ID)
}

func TestCartService_RemoveItem_PatchesProjection(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	productA := testProduct("p-1", "Revolving Chair")
	productB := testProduct("p-2", "Visitor Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.catalog.EXPECT().Get("p-1").Return(productA, true)
	fx.catalog.EXPECT().Get("p-2").Return(productB, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{
			{QuoteID: quoteID, ProductID: "p-1", Quantity: 1},
			{QuoteID: quoteID, ProductID: "p-2", Quantity: 2},
		}, nil)

	_, err := fx.service.AddItem(ctx, userID, "p-2", 2)
	require.NoError(t, err)

	fx.itemRepo.EXPECT().Delete(ctx, quoteID, "p-1").Return(nil)

	items, err := fx.service.RemoveItem(ctx, userID, "p-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p-2", items[0].Product.ID)
}

func TestCartService_RemoveItem_WithoutDraftReturnsProjection(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote)

	items, err := fx.service.RemoveItem(ctx, userID, "p-1")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_UpdateQuantity_ZeroDelegatesToRemove(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().Delete(ctx, quoteID, "p-1").Return(nil)

	_, err := fx.service.UpdateQuantity(ctx, userID, "p-1", 0)

	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_OverwritesStoredQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 2}}, nil)

	_, err := fx.service.AddItem(ctx, userID, "p-1", 2)
	require.NoError(t, err)

	fx.itemRepo.EXPECT().UpdateQuantity(ctx, quoteID, "p-1", 7).Return(nil)

	items, err := fx.service.UpdateQuantity(ctx, userID, "p-1", 7)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartService_Clear_KeepsDraftHeader(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil).Once()
	fx.itemRepo.EXPECT().DeleteAll(ctx, quoteID).Return(nil)

	require.NoError(t, fx.service.Clear(ctx, userID))

	// The emptied projection is cached; no store round trip on read.
	items, err := fx.service.Items(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_ItemCount_SumsQuantities(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	productA := testProduct("p-1", "Revolving Chair")
	productB := testProduct("p-2", "Visitor Chair")

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).
		Return(&entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}, nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{
			{QuoteID: quoteID, ProductID: "p-1", Quantity: 2},
			{QuoteID: quoteID, ProductID: "p-2", Quantity: 3},
		}, nil)
	fx.catalog.EXPECT().Get("p-1").Return(productA, true)
	fx.catalog.EXPECT().Get("p-2").Return(productB, true)

	count, err := fx.service.ItemCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCartService_Refresh_RebuildsProjectionFromStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).
		Return(&entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}, nil).Once()
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 3}}, nil).Once()
	fx.catalog.EXPECT().Get("p-1").Return(product, true)

	require.NoError(t, fx.service.Refresh(ctx, userID))

	// The rebuilt projection serves subsequent reads without store access.
	items, err := fx.service.Items(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_Refresh_AnonymousRejected(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.Refresh(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestCartService_ProjectionLifecycleScenario(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.catalog.EXPECT().Get("p-1").Return(product, true)
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
	fx.itemRepo.EXPECT().UpsertIncrement(ctx, mock.AnythingOfType("*entity.QuoteItem")).Return(nil)
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 2}}, nil).Once()
	fx.itemRepo.EXPECT().FindByQuote(ctx, quoteID).
		Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 5}}, nil).Once()
	fx.itemRepo.EXPECT().UpdateQuantity(ctx, quoteID, "p-1", 1).Return(nil)
	fx.itemRepo.EXPECT().Delete(ctx, quoteID, "p-1").Return(nil)

	items, err := fx.service.AddItem(ctx, userID, "p-1", 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	items, err = fx.service.AddItem(ctx, userID, "p-1", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	items, err = fx.service.UpdateQuantity(ctx, userID, "p-1", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items, err = fx.service.RemoveItem(ctx, userID, "p-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	count, err := fx.service.ItemCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCartService_Forget_DropsCachedProjection(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Twice()

	_, err := fx.service.Items(ctx, userID)
	require.NoError(t, err)

	fx.service.Forget(userID)

	// The next read goes back to the store.
	_, err = fx.service.Items(ctx, userID)
	require.NoError(t, err)
}

func TestCartService_Submit_MarksDraftPending(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}
	input := &usecase.SubmitQuoteInput{
		CompanyName:       "Acme Interiors",
		ContactPerson:     "R. Sharma",
		Email:             "purchase@acme.example",
		Phone:             "9876543210",
		AdditionalRemarks: "Deliver to loading dock",
	}

	// Projection warm-up before the transaction.
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)
			mockItemRepo := mockRepo.NewMockQuoteItemRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockFactory.EXPECT().QuoteItemRepo().Return(mockItemRepo)

			mockProfileRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, userID, profile.UserID)
					assert.Equal(t, "Acme Interiors", profile.CompanyName)
				}).
				Return(nil)
			mockQuoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
			mockItemRepo.EXPECT().FindByQuote(ctx, quoteID).
				Return([]*entity.QuoteItem{
					{QuoteID: quoteID, ProductID: "p-1", ProductName: "Revolving Chair", Quantity: 2},
					{QuoteID: quoteID, ProductID: "p-2", ProductName: "Visitor Chair", Quantity: 1},
				}, nil)
			// Two distinct lines; the denormalized total is the line
			// count, not the summed quantities.
			mockQuoteRepo.EXPECT().MarkPending(ctx, quoteID, 2, "Deliver to loading dock").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishQuoteSubmitted(ctx, mock.AnythingOfType("*service.QuoteSubmittedEvent")).
		Return(nil)

	output, err := fx.service.Submit(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, quoteID, output.QuoteID)
	assert.Equal(t, quoteID.String()[:8], output.Reference)

	// The projection is emptied after submission.
	items, err := fx.service.Items(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_Submit_EmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)
			mockItemRepo := mockRepo.NewMockQuoteItemRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockFactory.EXPECT().QuoteItemRepo().Return(mockItemRepo)

			mockProfileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
			mockQuoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote)

			return fn(mockFactory)
		})

	_, err := fx.service.Submit(ctx, userID, &usecase.SubmitQuoteInput{CompanyName: "Acme"})

	assert.ErrorIs(t, err, domainerrors.ErrEmptyQuote)
}

func TestCartService_Submit_WithoutDraftBackfillsFromProjection(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	oldQuoteID := uuid.New()
	product := testProduct("p-1", "Revolving Chair")

	// Warm the projection from an existing draft, then have the draft
	// disappear before the transaction runs.
	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).
		Return(&entity.Quote{ID: oldQuoteID, UserID: userID, Status: entity.QuoteStatusDraft}, nil).Once()
	fx.itemRepo.EXPECT().FindByQuote(ctx, oldQuoteID).
		Return([]*entity.QuoteItem{{QuoteID: oldQuoteID, ProductID: "p-1", Quantity: 2}}, nil)
	fx.catalog.EXPECT().Get("p-1").Return(product, true)

	_, err := fx.service.Items(ctx, userID)
	require.NoError(t, err)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)
			mockItemRepo := mockRepo.NewMockQuoteItemRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockFactory.EXPECT().QuoteItemRepo().Return(mockItemRepo)

			mockProfileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
			mockQuoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote)
			mockQuoteRepo.EXPECT().
				CreatePending(ctx, mock.AnythingOfType("*entity.Quote")).
				Run(func(ctx context.Context, quote *entity.Quote) {
					assert.Equal(t, userID, quote.UserID)
					assert.Equal(t, 1, quote.TotalItems)
					quote.ID = quoteID
				}).
				Return(nil)
			mockItemRepo.EXPECT().
				CreateBatch(ctx, mock.AnythingOfType("[]*entity.QuoteItem")).
				Run(func(ctx context.Context, items []*entity.QuoteItem) {
					require.Len(t, items, 1)
					assert.Equal(t, quoteID, items[0].QuoteID)
					assert.Equal(t, "p-1", items[0].ProductID)
					assert.Equal(t, 2, items[0].Quantity)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishQuoteSubmitted(ctx, mock.AnythingOfType("*service.QuoteSubmittedEvent")).
		Return(nil)

	output, err := fx.service.Submit(ctx, userID, &usecase.SubmitQuoteInput{CompanyName: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, quoteID, output.QuoteID)
}

func TestCartService_Submit_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	quoteID := uuid.New()
	draft := &entity.Quote{ID: quoteID, UserID: userID, Status: entity.QuoteStatusDraft}

	fx.quoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(nil, repository.ErrNoDraftQuote).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)
			mockItemRepo := mockRepo.NewMockQuoteItemRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockFactory.EXPECT().QuoteItemRepo().Return(mockItemRepo)

			mockProfileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
			mockQuoteRepo.EXPECT().FindDraftByUser(ctx, userID).Return(draft, nil)
			mockItemRepo.EXPECT().FindByQuote(ctx, quoteID).
				Return([]*entity.QuoteItem{{QuoteID: quoteID, ProductID: "p-1", Quantity: 1}}, nil)
			mockQuoteRepo.EXPECT().MarkPending(ctx, quoteID, 1, "").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishQuoteSubmitted(ctx, mock.AnythingOfType("*service.QuoteSubmittedEvent")).
		Return(assert.AnError)

	output, err := fx.service.Submit(ctx, userID, &usecase.SubmitQuoteInput{CompanyName: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, quoteID, output.QuoteID)
}

func TestCartService_Submit_NilInput(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Submit(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
