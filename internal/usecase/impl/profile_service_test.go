package impl

import (
	"context"
	"testing"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	mockRepo "seatech/internal/mocks/repository"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_Success(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.Profile{
		UserID:      userID,
		CompanyName: "Acme Interiors",
		Email:       "purchase@acme.example",
	}

	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(expected, nil)

	profile, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_SaveProfile_Success(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SaveProfileInput{
		CompanyName:   "Acme Interiors",
		ContactPerson: "R. Sharma",
		Email:         "purchase@acme.example",
		Phone:         "9876543210",
		Address:       "Plot 14, Industrial Area",
		GSTNumber:     "22AAAAA0000A1Z5",
	}

	profileRepo.EXPECT().
		Upsert(ctx, &entity.Profile{
			UserID:        userID,
			CompanyName:   "Acme Interiors",
			ContactPerson: "R. Sharma",
			Email:         "purchase@acme.example",
			Phone:         "9876543210",
			Address:       "Plot 14, Industrial Area",
			GSTNumber:     "22AAAAA0000A1Z5",
		}).
		Return(nil)

	profile, err := service.SaveProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "Acme Interiors", profile.CompanyName)
}

func TestProfileService_SaveProfile_NilInput(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(profileRepo, newDiscardLogger())

	_, err := service.SaveProfile(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
