package handler

import (
	"seatech/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// authenticatedUserID reads the account ID the auth middleware stored on
// the context. The second return is false when the route was reached
// without authentication.
func authenticatedUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
