package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the contact and organization details attached to an account.
// It is created lazily, on first quote creation or explicit save, and is
// upserted but never deleted by this service. Quote headers reference it by
// user ID, which is why draft creation self-heals the profile row first.
type Profile struct {
	UserID        uuid.UUID `json:"user_id"`        // Shared with the account identity.
	CompanyName   string    `json:"company_name"`   // Organization the quote is billed to.
	ContactPerson string    `json:"contact_person"` // Full name of the contact.
	Email         string    `json:"email"`          // Official contact email.
	Phone         string    `json:"phone"`          // 10-digit mobile number.
	Address       string    `json:"address"`        // Complete billing address.
	GSTNumber     string    `json:"gst_number"`     // Optional GST registration number.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
