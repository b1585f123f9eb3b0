package usecase

import (
	"context"

	"seatech/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveProfileInput carries the contact and organization fields of the
// account settings form.
type SaveProfileInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	GSTNumber     string
}

// ProfileUsecase defines the profile read/write operations.
type ProfileUsecase interface {
	// GetProfile returns the user's profile, or ErrNotFound when none was
	// ever saved or healed into existence.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// SaveProfile upserts the profile and returns the stored row.
	SaveProfile(ctx context.Context, userID uuid.UUID, input *SaveProfileInput) (*entity.Profile, error)
}
