package usecase

import (
	"context"

	"seatech/internal/domain/entity"
)

// ListProductsInput narrows a catalogue listing.
type ListProductsInput struct {
	Category string
	Search   string
	Sort     string
}

// CatalogUsecase exposes the static product catalogue to the delivery layer.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
