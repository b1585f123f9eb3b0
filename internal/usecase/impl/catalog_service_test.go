package impl

import (
	"context"
	"testing"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/service"
	mockService "seatech/internal/mocks/service"
	"seatech/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_PassesFilter(t *testing.T) {
	catalog := mockService.NewMockProductCatalog(t)
	svc := NewCatalogService(catalog)

	expected := []entity.Product{testProduct("p-1", "Revolving Chair")}

	catalog.EXPECT().
		List(service.ProductFilter{Category: "Chair for General Purpose", Search: "revolving", Sort: "price_asc"}).
		Return(expected)

	products, err := svc.ListProducts(context.Background(), usecase.ListProductsInput{
		Category: "Chair for General Purpose",
		Search:   "revolving",
		Sort:     "price_asc",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	catalog := mockService.NewMockProductCatalog(t)
	svc := NewCatalogService(catalog)

	product := testProduct("p-1", "Revolving Chair")

	catalog.EXPECT().Get("p-1").Return(product, true)

	got, err := svc.GetProduct(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, product, *got)
}

func TestCatalogService_GetProduct_Unknown(t *testing.T) {
	catalog := mockService.NewMockProductCatalog(t)
	svc := NewCatalogService(catalog)

	catalog.EXPECT().Get("nope").Return(entity.Product{}, false)

	_, err := svc.GetProduct(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategories_Success(t *testing.T) {
	catalog := mockService.NewMockProductCatalog(t)
	svc := NewCatalogService(catalog)

	catalog.EXPECT().Categories().Return([]string{"Chair for General Purpose", "Computer Table (V2)"})

	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
