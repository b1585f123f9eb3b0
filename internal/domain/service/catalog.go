// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "seatech/internal/domain/entity"

// ProductFilter narrows and orders a catalogue listing. Zero values mean
// "no restriction"; filtering happens in memory over the static dataset.
type ProductFilter struct {
	Category string // Exact category match.
	Search   string // Case-insensitive substring over name, brand and model.
	Sort     string // "price_asc", "price_desc" or "discount"; empty keeps dataset order.
}

// ProductCatalog is the static catalogue contract: an immutable product list
// available synchronously from startup. The quote lifecycle consumes it by
// identity lookup only.
type ProductCatalog interface {
	// Get returns the product with the given ID, or false when the ID is
	// not resolvable (the basis of the stale-reference drop policy).
	Get(id string) (entity.Product, bool)

	// List returns products matching the filter, in catalogue order unless
	// the filter requests a sort.
	List(filter ProductFilter) []entity.Product

	// Categories returns the distinct category names, in catalogue order.
	Categories() []string
}
