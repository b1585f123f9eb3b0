package catalog

import (
	"testing"

	"seatech/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaticCatalog(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)
	require.NotNil(t, cat)

	all := cat.List(service.ProductFilter{})
	assert.NotEmpty(t, all)

	// Every product must be resolvable by its own ID
	for _, p := range all {
		got, ok := cat.Get(p.ID)
		require.True(t, ok, "product %s not resolvable", p.ID)
		assert.Equal(t, p.Name, got.Name)
	}
}

func TestStaticCatalog_Get_UnknownID(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)

	_, ok := cat.Get("no-such-product")
	assert.False(t, ok)
}

func TestStaticCatalog_List_CategoryFilter(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)

	categories := cat.Categories()
	require.NotEmpty(t, categories)

	filtered := cat.List(service.ProductFilter{Category: categories[0]})
	require.NotEmpty(t, filtered)
	for _, p := range filtered {
		assert.Equal(t, categories[0], p.Category)
	}

	// An unknown category matches nothing
	assert.Empty(t, cat.List(service.ProductFilter{Category: "Thrones"}))
}

func TestStaticCatalog_List_Search(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)

	results := cat.List(service.ProductFilter{Search: "auditorium"})
	require.NotEmpty(t, results)

	// Search is case-insensitive over name, brand and model
	upper := cat.List(service.ProductFilter{Search: "AUDITORIUM"})
	assert.Equal(t, results, upper)

	assert.Empty(t, cat.List(service.ProductFilter{Search: "zzzzzz"}))
}

func TestStaticCatalog_List_Sort(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)

	asc := cat.List(service.ProductFilter{Sort: "price_asc"})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := cat.List(service.ProductFilter{Sort: "price_desc"})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	byDiscount := cat.List(service.ProductFilter{Sort: "discount"})
	for i := 1; i < len(byDiscount); i++ {
		assert.GreaterOrEqual(t, byDiscount[i-1].Discount, byDiscount[i].Discount)
	}
}

func TestStaticCatalog_Categories_Distinct(t *testing.T) {
	cat, err := NewStaticCatalog()
	require.NoError(t, err)

	categories := cat.Categories()
	seen := make(map[string]struct{})
	for _, c := range categories {
		_, dup := seen[c]
		assert.False(t, dup, "duplicate category %s", c)
		seen[c] = struct{}{}
	}
}
