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
	"gorm.io/gorm/clause"
)

// quoteItemRepository implements the repository.QuoteItemRepository interface.
type quoteItemRepository struct {
	db *gorm.DB
}

// NewQuoteItemRepository is the constructor for quoteItemRepository.
func NewQuoteItemRepository(db *gorm.DB) repository.QuoteItemRepository {
	return &quoteItemRepository{
		db: db,
	}
}

// UpsertIncrement inserts a line item, or adds the incoming quantity onto the
// existing row when (quote_id, product_id) already exists. The increment is
// pushed into the database so concurrent adds never lose updates.
func (repo *quoteItemRepository) UpsertIncrement(ctx context.Context, item *entity.QuoteItem) error {
	itemM := fromQuoteItemDomain(item)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "quote_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quote_items.quantity + ?", item.Quantity),
			}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrItemMutation.WrapMessage("invalid quote reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrItemMutation.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert quote item")
	}

	return nil
}

// UpdateQuantity overwrites the stored quantity for a line item.
func (repo *quoteItemRepository) UpdateQuantity(ctx context.Context, quoteID uuid.UUID, productID string, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteItemModel{}).
		Where("quote_id = ? AND product_id = ?", quoteID, productID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update quote item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// Delete removes the line item matching (quote, product).
func (repo *quoteItemRepository) Delete(ctx context.Context, quoteID uuid.UUID, productID string) error {
	result := repo.db.WithContext(ctx).
		Where("quote_id = ? AND product_id = ?", quoteID, productID).
		Delete(&model.QuoteItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quote item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// DeleteAll removes every line item under a header.
func (repo *quoteItemRepository) DeleteAll(ctx context.Context, quoteID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Delete(&model.QuoteItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete quote items")
	}

	return nil
}

// FindByQuote retrieves all line items under a header, oldest first.
func (repo *quoteItemRepository) FindByQuote(ctx context.Context, quoteID uuid.UUID) ([]*entity.QuoteItem, error) {
	var itemModels []*model.QuoteItemModel

	if err := repo.db.WithContext(ctx).
		Where("quote_id = ?", quoteID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quote items")
	}

	items := make([]*entity.QuoteItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toQuoteItemDomain(itemM))
	}

	return items, nil
}

// CreateBatch inserts a set of line items in one statement.
func (repo *quoteItemRepository) CreateBatch(ctx context.Context, items []*entity.QuoteItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.QuoteItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromQuoteItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrItemMutation.WrapMessage("invalid quote reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote items")
	}

	return nil
}

// --- Mapper Functions ---

// toQuoteItemDomain converts a GORM QuoteItemModel to a domain QuoteItem entity.
func toQuoteItemDomain(data *model.QuoteItemModel) *entity.QuoteItem {
	if data == nil {
		return nil
	}

	return &entity.QuoteItem{
		QuoteID:     data.QuoteID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
	}
}

// fromQuoteItemDomain converts a domain QuoteItem entity to a GORM QuoteItemModel.
func fromQuoteItemDomain(data *entity.QuoteItem) *model.QuoteItemModel {
	if data == nil {
		return nil
	}

	return &model.QuoteItemModel{
		QuoteID:     data.QuoteID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
	}
}
