package impl

import (
	"context"
	"log/slog"

	deliverycontext "seatech/internal/delivery/context"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to get profile",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// SaveProfile upserts the profile and returns the stored row.
func (srv *profileService) SaveProfile(ctx context.Context, userID uuid.UUID, input *usecase.SaveProfileInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("profile details are required")
	}

	profile := &entity.Profile{
		UserID:        userID,
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		GSTNumber:     input.GSTNumber,
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save profile",
			slog.Any("user_id", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Info("Profile saved", slog.Any("user_id", userID))

	return profile, nil
}
