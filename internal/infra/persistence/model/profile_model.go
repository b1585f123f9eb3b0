package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID references accounts.id (UUID).
// One row per account, written via upsert only.
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName   string    `gorm:"type:varchar(255)"`
	ContactPerson string    `gorm:"type:varchar(100)"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	Address       string    `gorm:"type:text"`
	GSTNumber     string    `gorm:"column:gst_number;type:varchar(15)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
