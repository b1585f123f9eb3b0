package handler

import (
	"net/http"

	"seatech/internal/delivery/http/response"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuoteHandler serves the submitted-quotes dashboard.
type QuoteHandler struct {
	uc usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// ListQuotes returns the user's submitted quote headers, newest first.
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	quotes, err := h.uc.ListSubmitted(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quotes, "")
}

// GetQuote returns one quote header with its line items.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote ID")
	}

	output, err := h.uc.GetQuote(c.Request().Context(), userID, quoteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// QuoteQR streams a PNG QR code of the quote's tracking URL.
func (h *QuoteHandler) QuoteQR(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quote ID")
	}

	png, err := h.uc.QuoteReferenceQR(c.Request().Context(), userID, quoteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
