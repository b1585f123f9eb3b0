package postgres

import (
	"context"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// quoteRepository implements the repository.QuoteRepository interface.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{
		db: db,
	}
}

// FindDraftByUser retrieves the unique draft header for a user.
func (repo *quoteRepository) FindDraftByUser(ctx context.Context, userID uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.QuoteStatusDraft)).
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoDraftQuote
		}

		return nil, errors.Wrap(err, "failed to find draft quote")
	}

	return toQuoteDomain(&quoteM), nil
}

// CreateDraft atomically gets-or-inserts the draft header for a user.
// The partial unique index on (user_id) WHERE status = 'draft' guarantees at
// most one draft row; losing the insert race means another request already
// created the draft, so the winning row is read back and returned.
func (repo *quoteRepository) CreateDraft(ctx context.Context, userID uuid.UUID) (*entity.Quote, error) {
	quoteM := &model.QuoteModel{
		UserID: userID,
		Status: string(entity.QuoteStatusDraft),
	}

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindDraftByUser(ctx, userID)
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrQuoteCreation.WrapMessage("invalid user reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create draft quote")
	}

	return toQuoteDomain(quoteM), nil
}

// CreatePending inserts a header directly in pending status.
func (repo *quoteRepository) CreatePending(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)
	quoteM.Status = string(entity.QuoteStatusPending)

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrQuoteCreation.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pending quote")
	}

	// Update the entity with generated values
	quote.ID = quoteM.ID
	quote.Status = entity.QuoteStatus(quoteM.Status)
	quote.CreatedAt = quoteM.CreatedAt
	quote.UpdatedAt = quoteM.UpdatedAt

	return nil
}

// MarkPending transitions a draft header to pending. The status predicate
// keeps the update idempotent: a second submit of the same quote matches no
// rows and reports ErrQuoteNotFound instead of clobbering a reviewed quote.
func (repo *quoteRepository) MarkPending(ctx context.Context, quoteID uuid.UUID, totalItems int, remarks string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ? AND status = ?", quoteID, string(entity.QuoteStatusDraft)).
		Updates(map[string]interface{}{
			"status":             string(entity.QuoteStatusPending),
			"total_items":        totalItems,
			"additional_remarks": remarks,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark quote pending")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// FindByID retrieves a single header by its unique ID.
func (repo *quoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quoteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by ID")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindSubmittedByUser retrieves all non-draft headers for a user, newest first.
func (repo *quoteRepository) FindSubmittedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error) {
	var quoteModels []*model.QuoteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, string(entity.QuoteStatusDraft)).
		Order("created_at DESC").
		Find(&quoteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submitted quotes")
	}

	quotes := make([]*entity.Quote, 0, len(quoteModels))
	for _, quoteM := range quoteModels {
		quotes = append(quotes, toQuoteDomain(quoteM))
	}

	return quotes, nil
}

// --- Mapper Functions ---

// toQuoteDomain converts a GORM QuoteModel to a domain Quote entity.
func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:                data.ID,
		UserID:            data.UserID,
		Status:            entity.QuoteStatus(data.Status),
		TotalItems:        data.TotalItems,
		AdditionalRemarks: data.AdditionalRemarks,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromQuoteDomain converts a domain Quote entity to a GORM QuoteModel.
func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Status:            string(data.Status),
		TotalItems:        data.TotalItems,
		AdditionalRemarks: data.AdditionalRemarks,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
