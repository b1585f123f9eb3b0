// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a single item in the static furniture catalogue. Products are
// immutable reference data: the quote lifecycle stores only their IDs and a
// denormalized name, never the full record.
type Product struct {
	ID              string                 `json:"id"`              // Catalogue identifier, e.g. "5116877-34097804961".
	Name            string                 `json:"name"`            // Display name shown in listings and quotes.
	Brand           string                 `json:"brand"`           // Manufacturer brand, e.g. "Seatech OEM".
	Model           string                 `json:"model"`           // Manufacturer model code.
	Category        string                 `json:"category"`        // Catalogue category, e.g. "Auditorium Chair (V2)".
	Price           int64                  `json:"price"`           // List price per unit, in rupees.
	Availability    int                    `json:"availability"`    // Units available for bulk order.
	MinQty          int                    `json:"minQty"`          // Minimum order quantity for quoting.
	Discount        int                    `json:"discount"`        // Bulk discount percentage off list price.
	CountryOfOrigin string                 `json:"countryOfOrigin"` // Manufacturing origin.
	Seller          SellerInfo             `json:"seller"`          // Seller metadata for the listing.
	Images          []ProductImage         `json:"images"`          // Main/thumbnail image pairs.
	Specifications  []ProductSpecification `json:"specifications"`  // Grouped spec triples.
}

// ProductImage pairs a full-size image with its thumbnail.
type ProductImage struct {
	Main      string `json:"main"`
	Thumbnail string `json:"thumbnail"`
}

// ProductSpecification is one category/name/value spec row.
type ProductSpecification struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// SellerInfo describes the seller behind a catalogue listing.
type SellerInfo struct {
	Name     string  `json:"name"`
	Verified bool    `json:"verified"`
	Rating   float64 `json:"rating"`
}
