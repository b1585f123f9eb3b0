package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteModel mirrors the 'quotes' table.
// A partial unique index enforces at most one draft row per user:
//
//	CREATE UNIQUE INDEX idx_quotes_one_draft ON quotes (user_id) WHERE status = 'draft';
//
// GORM tags cannot express partial indexes, so the index lives in the
// migration; CreateDraft relies on the resulting unique violation.
type QuoteModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(20);not null;default:'draft'"`
	TotalItems        int       `gorm:"not null;default:0"`
	AdditionalRemarks string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []QuoteItemModel `gorm:"foreignKey:QuoteID"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}

// QuoteItemModel mirrors the 'quote_items' table. The composite unique index
// makes repeated adds of the same product collapse into a single row.
type QuoteItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	QuoteID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_quote_items_quote_product"`
	ProductID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_quote_items_quote_product"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteItemModel) TableName() string {
	return "quote_items"
}
