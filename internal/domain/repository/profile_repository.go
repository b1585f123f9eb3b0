package repository

import (
	"context"
	"errors"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves a single profile by its owning account ID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert inserts the profile or overwrites the existing row for the
	// same user ID. Profiles are never deleted by this service.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// EnsureExists guarantees a minimal profile row for the user, creating
	// one with just identity and email when absent. Used to self-heal the
	// foreign-key dependency before draft quote creation.
	EnsureExists(ctx context.Context, userID uuid.UUID, email string) error
}
