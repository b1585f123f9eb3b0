// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a serving transport. Serve blocks until the server stops;
// graceful shutdown runs through the Fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
