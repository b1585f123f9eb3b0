package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record behind a storefront login. It carries only
// identity fields; contact and organization details live on Profile.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"` // Login identifier, unique.
	Name      string    `json:"name"`  // Display name captured at registration.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Authentication stores the password credential for an account.
type Authentication struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RefreshToken is a persisted login session. The raw token is never stored,
// only its hash; expiry is checked on lookup.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
