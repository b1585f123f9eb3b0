package handler

import (
	"net/http"

	"seatech/internal/delivery/http/response"
	"seatech/internal/domain/entity"
	"seatech/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addItemRequest is the add-to-cart payload.
type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// updateQuantityRequest overwrites a line item's quantity. Zero removes
// the line, so no lower bound here.
type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// submitQuoteRequest carries the contact fields and remarks of the quote
// submission form.
type submitQuoteRequest struct {
	CompanyName       string `json:"company_name" validate:"required,max=200"`
	ContactPerson     string `json:"contact_person" validate:"required,max=120"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,inmobile"`
	Address           string `json:"address" validate:"max=500"`
	GSTNumber         string `json:"gst_number" validate:"omitempty,gst"`
	AdditionalRemarks string `json:"additional_remarks" validate:"max=2000"`
}

// cartView is the cart payload returned by every cart mutation.
type cartView struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
}

// CartHandler serves the quote-request cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func cartPayload(items []entity.CartItem) cartView {
	return cartView{
		Items:     items,
		ItemCount: entity.CartItemCount(items),
	}
}

// GetCart returns the user's cart projection.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	items, err := h.uc.Items(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(items), "")
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	items, err := h.uc.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(items), "Item added")
}

// UpdateQuantity overwrites a line item's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	items, err := h.uc.UpdateQuantity(c.Request().Context(), userID, c.Param("productId"), req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(items), "Quantity updated")
}

// RemoveItem deletes a line item from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	items, err := h.uc.RemoveItem(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(items), "Item removed")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	if err := h.uc.Clear(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(nil), "Cart cleared")
}

// Submit turns the cart into a pending quote request.
func (h *CartHandler) Submit(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req submitQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	output, err := h.uc.Submit(c.Request().Context(), userID, &usecase.SubmitQuoteInput{
		CompanyName:       req.CompanyName,
		ContactPerson:     req.ContactPerson,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		GSTNumber:         req.GSTNumber,
		AdditionalRemarks: req.AdditionalRemarks,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"quote_id":  output.QuoteID.String(),
		"reference": output.Reference,
	}, "Quote request submitted")
}
