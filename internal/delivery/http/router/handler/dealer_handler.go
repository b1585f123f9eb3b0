package handler

import (
	"net/http"

	"seatech/internal/delivery/http/response"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// requirementLine is one category/quantity line of the application form.
type requirementLine struct {
	Category string `json:"category" validate:"required,max=120"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// dealerApplicationRequest is the dealer/OEM authorization form payload.
type dealerApplicationRequest struct {
	Type           string            `json:"type" validate:"required,oneof=L1 Bidding"`
	DealerName     string            `json:"dealer_name" validate:"required,max=200"`
	DirectorName   string            `json:"director_name" validate:"required,max=120"`
	Address        string            `json:"address" validate:"required,max=500"`
	Email          string            `json:"email" validate:"required,email"`
	Mobile         string            `json:"mobile" validate:"required,inmobile"`
	DirectorEmail  string            `json:"director_email" validate:"omitempty,email"`
	DirectorMobile string            `json:"director_mobile" validate:"omitempty,inmobile"`
	GSTNumber      string            `json:"gst_number" validate:"required,gst"`
	Requirements   []requirementLine `json:"requirements" validate:"required,min=1,dive"`
	TurnoverYear1  *float64          `json:"turnover_year_1" validate:"omitempty,min=0"`
	TurnoverYear2  *float64          `json:"turnover_year_2" validate:"omitempty,min=0"`
	TurnoverYear3  *float64          `json:"turnover_year_3" validate:"omitempty,min=0"`
	BiddingNumber  string            `json:"bidding_number" validate:"omitempty,max=60"`
}

// DealerHandler serves dealer authorization applications.
type DealerHandler struct {
	uc        usecase.DealerUsecase
	profileUC usecase.ProfileUsecase
}

// NewDealerHandler is the constructor for DealerHandler, injected by Fx.
func NewDealerHandler(uc usecase.DealerUsecase, profileUC usecase.ProfileUsecase) *DealerHandler {
	return &DealerHandler{uc: uc, profileUC: profileUC}
}

// SubmitApplication files a dealer or bidding authorization request.
func (h *DealerHandler) SubmitApplication(c echo.Context) error {
	if _, ok := authenticatedUserID(c); !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req dealerApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	requirements := make([]usecase.ProductRequirement, 0, len(req.Requirements))
	for _, line := range req.Requirements {
		requirements = append(requirements, usecase.ProductRequirement{
			Category: line.Category,
			Quantity: line.Quantity,
		})
	}

	application, err := h.uc.SubmitApplication(c.Request().Context(), &usecase.SubmitApplicationInput{
		Type:           entity.ApplicationType(req.Type),
		DealerName:     req.DealerName,
		DirectorName:   req.DirectorName,
		Address:        req.Address,
		Email:          req.Email,
		Mobile:         req.Mobile,
		DirectorEmail:  req.DirectorEmail,
		DirectorMobile: req.DirectorMobile,
		GSTNumber:      req.GSTNumber,
		Requirements:   requirements,
		TurnoverYear1:  req.TurnoverYear1,
		TurnoverYear2:  req.TurnoverYear2,
		TurnoverYear3:  req.TurnoverYear3,
		BiddingNumber:  req.BiddingNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted")
}

// ListApplications returns the applications filed under the account's
// profile email. Without a saved profile there is nothing to list.
func (h *DealerHandler) ListApplications(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	ctx := c.Request().Context()

	profile, err := h.profileUC.GetProfile(ctx, userID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return response.Success(c, http.StatusOK, []*entity.DealerApplication{}, "")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	applications, err := h.uc.ListApplications(ctx, profile.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "")
}
