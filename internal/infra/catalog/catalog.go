// Package catalog serves the static furniture catalogue from an embedded
// dataset. The catalogue is reference data baked into the binary; there is no
// runtime mutation and no database table behind it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"seatech/internal/domain/entity"
	"seatech/internal/domain/service"

	"github.com/pkg/errors"
)

//go:embed products.json
var productsJSON []byte

type staticCatalog struct {
	products   []entity.Product
	byID       map[string]int
	categories []string
}

// NewStaticCatalog loads the embedded product dataset. It fails fast on a
// corrupt dataset since the rest of the system assumes the catalogue exists.
func NewStaticCatalog() (service.ProductCatalog, error) {
	var products []entity.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, errors.Wrap(err, "failed to decode embedded product dataset")
	}

	byID := make(map[string]int, len(products))
	seen := make(map[string]struct{})
	var categories []string
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, errors.Errorf("duplicate product ID in dataset: %s", p.ID)
		}
		byID[p.ID] = i

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}

	return &staticCatalog{
		products:   products,
		byID:       byID,
		categories: categories,
	}, nil
}

// Get returns the product with the given ID
func (c *staticCatalog) Get(id string) (entity.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Product{}, false
	}

	return c.products[i], true
}

// List returns products matching the filter, in dataset order unless sorted
func (c *staticCatalog) List(filter service.ProductFilter) []entity.Product {
	result := make([]entity.Product, 0, len(c.products))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, p := range c.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		result = append(result, p)
	}

	switch filter.Sort {
	case "price_asc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case "price_desc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case "discount":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Discount > result[j].Discount })
	}

	return result
}

// Categories returns distinct category names in dataset order
func (c *staticCatalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)

	return out
}

func matchesSearch(p entity.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Brand), search) ||
		strings.Contains(strings.ToLower(p.Model), search)
}
