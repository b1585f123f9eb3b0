package impl

import (
	"context"
	"log/slog"
	"time"

	"seatech/config"
	deliverycontext "seatech/internal/delivery/context"
	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	"seatech/internal/domain/service"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshRepo   repository.RefreshTokenRepository
	tokenService  service.TokenService
	refreshSecret string
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	RefreshRepo  repository.RefreshTokenRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		refreshRepo:   params.RefreshRepo,
		tokenService:  params.TokenService,
		refreshSecret: params.Config.SecretKey.Refresh,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshTokens rotates a valid refresh token into a new token pair. The old
// session row is deleted; a stolen token can therefore be used at most once.
func (srv *sessionService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	parsed, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.refreshRepo.FindByHash(ctx, hashToken(refreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}

	if err := srv.refreshRepo.Delete(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to rotate session")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newSession := &entity.RefreshToken{
		AccountID: session.AccountID,
		TokenHash: hashToken(newRefreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshRepo.Create(ctx, newSession); err != nil {
		return nil, errors.Wrap(err, "failed to persist rotated session")
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("account_id", session.AccountID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes the session behind the given refresh token. An unknown or
// already expired token still logs out cleanly.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	session, err := srv.refreshRepo.FindByHash(ctx, hashToken(refreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to find session")
	}

	if err := srv.refreshRepo.Delete(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("account_id", session.AccountID))

	return session.AccountID, nil
}
