// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

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

// cartService implements the CartUsecase interface. It owns the in-memory
// cart projections and serializes operations per user so overlapping
// requests never interleave their store writes.
type cartService struct {
	txManager   repository.TransactionManager
	quoteRepo   repository.QuoteRepository
	itemRepo    repository.QuoteItemRepository
	profileRepo repository.ProfileRepository
	accountRepo repository.AccountRepository
	catalog     service.ProductCatalog
	publisher   service.EventPublisher
	logger      *slog.Logger

	guards      sync.Map // userID -> *sync.Mutex, the per-user in-flight guard
	projections sync.Map // userID -> []entity.CartItem
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	QuoteRepo   repository.QuoteRepository
	ItemRepo    repository.QuoteItemRepository
	ProfileRepo repository.ProfileRepository
	AccountRepo repository.AccountRepository
	Catalog     service.ProductCatalog
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		quoteRepo:   params.QuoteRepo,
		itemRepo:    params.ItemRepo,
		profileRepo: params.ProfileRepo,
		accountRepo: params.AccountRepo,
		catalog:     params.Catalog,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// lock acquires the per-user in-flight guard.
func (srv *cartService) lock(userID uuid.UUID) func() {
	muAny, _ := srv.guards.LoadOrStore(userID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

// Items returns the user's projection, loading it from the store on first access.
func (srv *cartService) Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrAuthRequired
	}

	unlock := srv.lock(userID)
	defer unlock()

	return srv.itemsLocked(ctx, userID)
}

func (srv *cartService) itemsLocked(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	if cached, ok := srv.projections.Load(userID); ok {
		return copyProjection(cached.([]entity.CartItem)), nil
	}

	projection, err := srv.loadProjection(ctx, userID)
	if err != nil {
		return nil, err
	}
	srv.projections.Store(userID, projection)

	return copyProjection(projection), nil
}

// Refresh rebuilds the projection from the store. Called on login.
func (srv *cartService) Refresh(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrAuthRequired
	}

	unlock := srv.lock(userID)
	defer unlock()

	projection, err := srv.loadProjection(ctx, userID)
	if err != nil {
		return err
	}
	srv.projections.Store(userID, projection)

	return nil
}

// Forget drops the cached projection without touching the store. Called on logout.
func (srv *cartService) Forget(userID uuid.UUID) {
	srv.projections.Delete(userID)
}

// AddItem adds quantity of a product to the draft, creating the draft first
// when needed. The projection is rebuilt from the store afterwards instead of
// patched, so a concurrent session's adds are folded in.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, productID string, quantity int) ([]entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrAuthRequired
	}
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	product, ok := srv.catalog.Get(productID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	unlock := srv.lock(userID)
	defer unlock()

	quote, err := srv.resolveOrCreateDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &entity.QuoteItem{
		QuoteID:     quote.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
	}
	if err := srv.itemRepo.UpsertIncrement(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to upsert quote item",
			slog.Any("user_id", userID),
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrItemMutation
	}

	stored, err := srv.itemRepo.FindByQuote(ctx, quote.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to re-fetch quote items after add",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrItemMutation
	}

	projection := srv.reconcile(ctx, stored)
	srv.projections.Store(userID, projection)

	return copyProjection(projection), nil
}

// RemoveItem deletes the product's line item and patches the projection
// optimistically. Without a draft there is nothing to remove.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID string) ([]entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrAuthRequired
	}

	unlock := srv.lock(userID)
	defer unlock()

	quote, err := srv.quoteRepo.FindDraftByUser(ctx, userID)
	if errors.Is(err, repository.ErrNoDraftQuote) {
		return srv.itemsLocked(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find draft quote")
	}

	if err := srv.itemRepo.Delete(ctx, quote.ID, productID); err != nil && !errors.Is(err, repository.ErrQuoteNotFound) {
		srv.log(ctx).Error("Failed to delete quote item",
			slog.Any("user_id", userID),
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrItemMutation
	}

	projection := srv.patchProjection(userID, func(items []entity.CartItem) []entity.CartItem {
		filtered := make([]entity.CartItem, 0, len(items))
		for _, item := range items {
			if item.Product.ID != productID {
				filtered = append(filtered, item)
			}
		}

		return filtered
	})

	return copyProjection(projection), nil
}

// UpdateQuantity overwrites the stored quantity and patches the projection
// optimistically. A quantity below one removes the line item instead.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		return srv.RemoveItem(ctx, userID, productID)
	}
	if userID == uuid.Nil {
		return nil, domainerrors.ErrAuthRequired
	}

	unlock := srv.lock(userID)
	defer unlock()

	quote, err := srv.quoteRepo.FindDraftByUser(ctx, userID)
	if errors.Is(err, repository.ErrNoDraftQuote) {
		return srv.itemsLocked(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find draft quote")
	}

	if err := srv.itemRepo.UpdateQuantity(ctx, quote.ID, productID, quantity); err != nil && !errors.Is(err, repository.ErrQuoteNotFound) {
		srv.log(ctx).Error("Failed to update quote item quantity",
			slog.Any("user_id", userID),
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrItemMutation
	}

	projection := srv.patchProjection(userID, func(items []entity.CartItem) []entity.CartItem {
		for i := range items {
			if items[i].Product.ID == productID {
				items[i].Quantity = quantity
			}
		}

		return items
	})

	return copyProjection(projection), nil
}

// Clear deletes every line item under the draft, keeping the header so its
// identity stays stable for subsequent adds.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrAuthRequired
	}

	unlock := srv.lock(userID)
	defer unlock()

	quote, err := srv.quoteRepo.FindDraftByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNoDraftQuote) {
		return errors.Wrap(err, "failed to find draft quote")
	}

	if quote != nil {
		if err := srv.itemRepo.DeleteAll(ctx, quote.ID); err != nil {
			srv.log(ctx).Error("Failed to clear quote items",
				slog.Any("user_id", userID),
				slog.Any("error", err),
			)

			return domainerrors.ErrItemMutation
		}
	}

	srv.projections.Store(userID, []entity.CartItem{})

	return nil
}

// ItemCount returns the sum of projection quantities.
func (srv *cartService) ItemCount(ctx context.Context, userID uuid.UUID) (int, error) {
	items, err := srv.Items(ctx, userID)
	if err != nil {
		return 0, err
	}

	return entity.CartItemCount(items), nil
}

// Submit turns the draft into a pending quote request. The contact fields
// are upserted into the profile first; that write is fatal here, unlike the
// self-heal during draft creation, because a submitted quote must carry
// reachable contact details.
func (srv *cartService) Submit(ctx context.Context, userID uuid.UUID, input *usecase.SubmitQuoteInput) (*usecase.SubmitQuoteOutput, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrAuthRequired
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("submission details are required")
	}

	unlock := srv.lock(userID)
	defer unlock()

	projection, err := srv.itemsLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	var submitted *entity.Quote
	var submittedItems []*entity.QuoteItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		quoteRepo := repoFactory.QuoteRepo()
		itemRepo := repoFactory.QuoteItemRepo()

		profile := &entity.Profile{
			UserID:        userID,
			CompanyName:   input.CompanyName,
			ContactPerson: input.ContactPerson,
			Email:         input.Email,
			Phone:         input.Phone,
			Address:       input.Address,
			GSTNumber:     input.GSTNumber,
		}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to upsert profile for submission")
		}

		quote, err := quoteRepo.FindDraftByUser(ctx, userID)
		if errors.Is(err, repository.ErrNoDraftQuote) {
			return srv.submitWithoutDraft(ctx, userID, input, projection, quoteRepo, itemRepo, &submitted, &submittedItems)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find draft quote")
		}

		items, err := itemRepo.FindByQuote(ctx, quote.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load quote items")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyQuote
		}

		// Denormalized count of distinct line items, not summed quantities.
		totalItems := len(items)

		if err := quoteRepo.MarkPending(ctx, quote.ID, totalItems, input.AdditionalRemarks); err != nil {
			return errors.Wrap(err, "failed to mark quote pending")
		}

		quote.Status = entity.QuoteStatusPending
		quote.TotalItems = totalItems
		quote.AdditionalRemarks = input.AdditionalRemarks
		submitted = quote
		submittedItems = items

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit quote",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishSubmitted(ctx, userID, input, submitted, submittedItems)
	srv.projections.Store(userID, []entity.CartItem{})

	srv.log(ctx).Info("Quote submitted",
		slog.Any("user_id", userID),
		slog.Any("quote_id", submitted.ID),
		slog.Int("total_items", submitted.TotalItems),
	)

	return &usecase.SubmitQuoteOutput{
		QuoteID:   submitted.ID,
		Reference: submitted.Reference(),
	}, nil
}

// submitWithoutDraft is the recovery path for a submission whose draft header
// is missing from the store: a pending header is created directly and the
// line items are backfilled from the in-memory projection.
func (srv *cartService) submitWithoutDraft(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.SubmitQuoteInput,
	projection []entity.CartItem,
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	submitted **entity.Quote,
	submittedItems *[]*entity.QuoteItem,
) error {
	if len(projection) == 0 {
		return domainerrors.ErrEmptyQuote
	}

	srv.log(ctx).Warn("No draft quote at submission, creating pending header from projection",
		slog.Any("user_id", userID),
		slog.Int("projection_len", len(projection)),
	)

	quote := &entity.Quote{
		UserID:            userID,
		TotalItems:        len(projection),
		AdditionalRemarks: input.AdditionalRemarks,
	}
	if err := quoteRepo.CreatePending(ctx, quote); err != nil {
		return errors.Wrap(err, "failed to create pending quote")
	}

	items := make([]*entity.QuoteItem, 0, len(projection))
	for _, cartItem := range projection {
		items = append(items, &entity.QuoteItem{
			QuoteID:     quote.ID,
			ProductID:   cartItem.Product.ID,
			ProductName: cartItem.Product.Name,
			Quantity:    cartItem.Quantity,
		})
	}
	if err := itemRepo.CreateBatch(ctx, items); err != nil {
		return errors.Wrap(err, "failed to backfill quote items")
	}

	*submitted = quote
	*submittedItems = items

	return nil
}

// publishSubmitted emits the quote-submitted event for the sales back
// office. Publish failures are logged, never surfaced: the quote is already
// committed.
func (srv *cartService) publishSubmitted(ctx context.Context, userID uuid.UUID, input *usecase.SubmitQuoteInput, quote *entity.Quote, items []*entity.QuoteItem) {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%d x %s", item.Quantity, item.ProductName))
	}

	event := &service.QuoteSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		QuoteID:     quote.ID.String(),
		Reference:   quote.Reference(),
		UserID:      userID.String(),
		CompanyName: input.CompanyName,
		ContactName: input.ContactPerson,
		Email:       input.Email,
		Phone:       input.Phone,
		TotalItems:  quote.TotalItems,
		Items:       lines,
		Remarks:     input.AdditionalRemarks,
	}

	if err := srv.publisher.PublishQuoteSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish quote-submitted event",
			slog.Any("quote_id", quote.ID),
			slog.Any("error", err),
		)
	}
}

// resolveOrCreateDraft finds the user's draft header, creating it when
// absent. Before creating, the profile row is healed into existence so the
// quote's profile reference holds; that heal is non-fatal because the user
// can still fill contact details at submission time.
func (srv *cartService) resolveOrCreateDraft(ctx context.Context, userID uuid.UUID) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindDraftByUser(ctx, userID)
	if err == nil {
		return quote, nil
	}
	if !errors.Is(err, repository.ErrNoDraftQuote) {
		return nil, errors.Wrap(err, "failed to find draft quote")
	}

	srv.healProfile(ctx, userID)

	quote, err = srv.quoteRepo.CreateDraft(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to create draft quote",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQuoteCreation
	}

	return quote, nil
}

// healProfile ensures a minimal profile row exists for the user.
func (srv *cartService) healProfile(ctx context.Context, userID uuid.UUID) {
	email := ""
	if account, err := srv.accountRepo.FindByID(ctx, userID); err == nil {
		email = account.Email
	}

	if err := srv.profileRepo.EnsureExists(ctx, userID, email); err != nil {
		srv.log(ctx).Warn("Profile self-heal failed, continuing with draft creation",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)
	}
}

// loadProjection rebuilds the projection from the store.
func (srv *cartService) loadProjection(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	quote, err := srv.quoteRepo.FindDraftByUser(ctx, userID)
	if errors.Is(err, repository.ErrNoDraftQuote) {
		return []entity.CartItem{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find draft quote")
	}

	items, err := srv.itemRepo.FindByQuote(ctx, quote.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load quote items")
	}

	return srv.reconcile(ctx, items), nil
}

// reconcile maps stored line items onto catalogue products. Line items whose
// product no longer resolves are dropped from the projection without error;
// the stored rows keep the denormalized name for submitted quotes.
func (srv *cartService) reconcile(ctx context.Context, items []*entity.QuoteItem) []entity.CartItem {
	projection := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		product, ok := srv.catalog.Get(item.ProductID)
		if !ok {
			srv.log(ctx).Debug("Dropping stale product reference from cart projection",
				slog.String("product_id", item.ProductID),
			)

			continue
		}
		projection = append(projection, entity.CartItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	return projection
}

// patchProjection applies fn to the cached projection, storing and returning
// the result. A missing cache entry patches an empty projection.
func (srv *cartService) patchProjection(userID uuid.UUID, fn func([]entity.CartItem) []entity.CartItem) []entity.CartItem {
	current := []entity.CartItem{}
	if cached, ok := srv.projections.Load(userID); ok {
		current = copyProjection(cached.([]entity.CartItem))
	}

	patched := fn(current)
	srv.projections.Store(userID, patched)

	return patched
}

func copyProjection(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)

	return out
}
