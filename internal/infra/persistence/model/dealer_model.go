package model

import (
	"time"

	"github.com/google/uuid"
)

// DealerApplicationModel mirrors the 'dealer_applications' table. Applications
// are insert-only from this service; review happens in the back office.
type DealerApplicationModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ApplicationType     string    `gorm:"type:varchar(20);not null"`
	DealerName          string    `gorm:"type:varchar(255);not null"`
	DirectorName        string    `gorm:"type:varchar(100);not null"`
	Address             string    `gorm:"type:text;not null"`
	Email               string    `gorm:"type:varchar(255);not null"`
	Mobile              string    `gorm:"type:varchar(20);not null"`
	DirectorEmail       string    `gorm:"type:varchar(255);not null"`
	DirectorMobile      string    `gorm:"type:varchar(20);not null"`
	GSTNumber           string    `gorm:"column:gst_number;type:varchar(15);not null"`
	ProductRequirements string    `gorm:"type:text"`
	TurnoverYear1       *float64  `gorm:"type:decimal(14,2)"`
	TurnoverYear2       *float64  `gorm:"type:decimal(14,2)"`
	TurnoverYear3       *float64  `gorm:"type:decimal(14,2)"`
	Remarks             string    `gorm:"type:text"`
	Status              string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealerApplicationModel) TableName() string {
	return "dealer_applications"
}
