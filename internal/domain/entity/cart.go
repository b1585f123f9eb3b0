package entity

// CartItem is one entry of the in-memory cart projection: a catalogue
// product annotated with the quantity stored on the user's draft quote.
// The projection is derived from the quote store, never authoritative.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartItemCount sums the quantities of a projection.
func CartItemCount(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}
