package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "seatech/internal/delivery/context"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/usecase"

	"github.com/pkg/errors"
)

// dealerService implements the DealerUsecase interface.
type dealerService struct {
	dealerRepo repository.DealerApplicationRepository
	logger     *slog.Logger
}

// NewDealerService is the constructor for dealerService.
func NewDealerService(dealerRepo repository.DealerApplicationRepository, logger *slog.Logger) usecase.DealerUsecase {
	return &dealerService{
		dealerRepo: dealerRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dealerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitApplication validates and persists a dealer authorization request.
func (srv *dealerService) SubmitApplication(ctx context.Context, input *usecase.SubmitApplicationInput) (*entity.DealerApplication, error) {
	if input == nil {
		return nil, domainerrors.ErrApplicationInvalid.WrapMessage("application details are required")
	}
	if len(input.Requirements) == 0 {
		return nil, domainerrors.ErrApplicationInvalid.WrapMessage("at least one product requirement is required")
	}
	for _, requirement := range input.Requirements {
		if strings.TrimSpace(requirement.Category) == "" || requirement.Quantity < 1 {
			return nil, domainerrors.ErrApplicationInvalid.WrapMessage("each requirement needs a category and a positive quantity")
		}
	}

	remarks := ""
	switch input.Type {
	case entity.ApplicationTypeBidding:
		if input.TurnoverYear1 == nil || input.TurnoverYear2 == nil || input.TurnoverYear3 == nil {
			return nil, domainerrors.ErrTurnoverIncomplete
		}
		if strings.TrimSpace(input.BiddingNumber) == "" {
			return nil, domainerrors.ErrApplicationInvalid.WrapMessage("bidding number is required for bidding applications")
		}
		remarks = "Bidding No: " + input.BiddingNumber
	case entity.ApplicationTypeL1:
		// Turnover figures are optional for standard L1 authorization.
	default:
		return nil, domainerrors.ErrApplicationInvalid.WrapMessage("unknown application type")
	}

	application := &entity.DealerApplication{
		Type:                input.Type,
		DealerName:          input.DealerName,
		DirectorName:        input.DirectorName,
		Address:             input.Address,
		Email:               input.Email,
		Mobile:              input.Mobile,
		DirectorEmail:       input.DirectorEmail,
		DirectorMobile:      input.DirectorMobile,
		GSTNumber:           input.GSTNumber,
		ProductRequirements: formatRequirements(input.Requirements),
		TurnoverYear1:       input.TurnoverYear1,
		TurnoverYear2:       input.TurnoverYear2,
		TurnoverYear3:       input.TurnoverYear3,
		Remarks:             remarks,
		Status:              "pending",
	}

	if err := srv.dealerRepo.Create(ctx, application); err != nil {
		srv.log(ctx).Error("Failed to create dealer application",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create dealer application")
	}

	srv.log(ctx).Info("Dealer application submitted",
		slog.Any("application_id", application.ID),
		slog.String("type", string(application.Type)),
	)

	return application, nil
}

// ListApplications retrieves the applications submitted under an email, newest first.
func (srv *dealerService) ListApplications(ctx context.Context, email string) ([]*entity.DealerApplication, error) {
	applications, err := srv.dealerRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to list dealer applications",
			slog.String("email", email),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list dealer applications")
	}

	return applications, nil
}

// formatRequirements flattens requirement lines into the stored
// "Category: qty; Category: qty" form.
func formatRequirements(requirements []usecase.ProductRequirement) string {
	lines := make([]string, 0, len(requirements))
	for _, requirement := range requirements {
		lines = append(lines, fmt.Sprintf("%s: %d", requirement.Category, requirement.Quantity))
	}

	return strings.Join(lines, "; ")
}
