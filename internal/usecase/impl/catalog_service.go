package impl

import (
	"context"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/service"
	"seatech/internal/usecase"
)

// catalogService implements the CatalogUsecase interface over the static
// catalogue. There is no store access here; everything is in memory.
type catalogService struct {
	catalog service.ProductCatalog
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog service.ProductCatalog) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
	}
}

// ListProducts returns products matching the filter.
func (srv *catalogService) ListProducts(_ context.Context, input usecase.ListProductsInput) ([]entity.Product, error) {
	return srv.catalog.List(service.ProductFilter{
		Category: input.Category,
		Search:   input.Search,
		Sort:     input.Sort,
	}), nil
}

// GetProduct returns the product with the given ID.
func (srv *catalogService) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	product, ok := srv.catalog.Get(id)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return &product, nil
}

// ListCategories returns the distinct category names.
func (srv *catalogService) ListCategories(_ context.Context) ([]string, error) {
	return srv.catalog.Categories(), nil
}
