package impl

import (
	"context"
	"testing"
	"time"

	"seatech/config"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	mockRepo "seatech/internal/mocks/repository"
	mockService "seatech/internal/mocks/service"
	"seatech/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	tokenService *mockService.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockService.NewMockTokenService(t)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	service := NewSessionService(SessionServiceParams{
		RefreshRepo:  refreshRepo,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:      service,
		refreshRepo:  refreshRepo,
		tokenService: tokenService,
	}
}

func TestSessionService_RefreshTokens_RotatesSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()
	oldToken := "old-refresh-token"

	fx.tokenService.EXPECT().ValidateToken(oldToken, "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshRepo.EXPECT().FindByHash(ctx, hashToken(oldToken)).
		Return(&entity.RefreshToken{ID: sessionID, AccountID: accountID}, nil)
	fx.refreshRepo.EXPECT().Delete(ctx, sessionID).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(accountID).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, session *entity.RefreshToken) {
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, hashToken("new-refresh"), session.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.RefreshTokens(ctx, oldToken)

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestSessionService_RefreshTokens_InvalidSignature(t *testing.T) {
	fx := createTestSessionService(t)

	fx.tokenService.EXPECT().ValidateToken("forged", "refresh-secret").
		Return(nil, jwt.ErrSignatureInvalid)

	_, err := fx.service.RefreshTokens(context.Background(), "forged")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RefreshTokens_UnknownSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("orphan", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshRepo.EXPECT().FindByHash(ctx, hashToken("orphan")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshTokens(ctx, "orphan")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_RefreshTokens_ExpiredSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("stale", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.refreshRepo.EXPECT().FindByHash(ctx, hashToken("stale")).
		Return(nil, repository.ErrRefreshTokenExpired)

	_, err := fx.service.RefreshTokens(ctx, "stale")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Logout_RevokesSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()

	fx.refreshRepo.EXPECT().FindByHash(ctx, hashToken("live-token")).
		Return(&entity.RefreshToken{ID: sessionID, AccountID: accountID}, nil)
	fx.refreshRepo.EXPECT().Delete(ctx, sessionID).Return(nil)

	got, err := fx.service.Logout(ctx, "live-token")

	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestSessionService_Logout_UnknownTokenIsClean(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.refreshRepo.EXPECT().FindByHash(ctx, hashToken("gone")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	got, err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}
