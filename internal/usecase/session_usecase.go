package usecase

import (
	"context"

	"github.com/google/uuid"
)

// TokenPairOutput returns a rotated access/refresh token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the refresh-token session operations.
type SessionUsecase interface {
	// RefreshTokens rotates a valid refresh token into a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout revokes the session behind the given refresh token and
	// returns its account ID, or uuid.Nil when the token was already
	// unknown. An unknown or expired token still logs out cleanly.
	Logout(ctx context.Context, refreshToken string) (uuid.UUID, error)
}
