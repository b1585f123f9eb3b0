package impl

import (
	"io"
	"log/slog"

	"seatech/internal/domain/entity"
)

// newDiscardLogger creates a logger that discards output, for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testProduct builds a minimal catalogue product for projection tests.
func testProduct(id, name string) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Category: "Chair for General Purpose",
		Price:    1500,
	}
}
