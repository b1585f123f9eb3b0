package repository

import (
	"context"
	"errors"
	"time"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrAuthNotFound is returned when no credential exists for an account.
var ErrAuthNotFound = errors.New("authentication not found")

// ErrRefreshTokenNotFound is returned when a refresh token lookup misses.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// ErrRefreshTokenExpired is returned when a stored refresh token has passed its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindAuthentication retrieves the password credential for an account.
	FindAuthentication(ctx context.Context, accountID uuid.UUID) (*entity.Authentication, error)

	// CreateAuthentication persists a new password credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}

// RefreshTokenRepository defines the operations for login session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a login session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a token record by its stored hash, returning
	// ErrRefreshTokenExpired for rows past their expiry.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Delete removes a single token, ending that session.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccount removes every token for an account (logout everywhere).
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes tokens that expired before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) error
}
