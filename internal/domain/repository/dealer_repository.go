package repository

import (
	"context"

	"seatech/internal/domain/entity"
)

// DealerApplicationRepository defines the operations for dealer/OEM
// authorization application persistence. Applications are insert-and-list
// only; review happens outside this service.
type DealerApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, application *entity.DealerApplication) error

	// FindByEmail retrieves all applications submitted under an email, newest first.
	FindByEmail(ctx context.Context, email string) ([]*entity.DealerApplication, error)
}
