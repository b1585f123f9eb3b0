package impl

import (
	"context"
	"testing"
	"time"

	"seatech/internal/domain/entity"
	domainerrors "seatech/internal/domain/errors"
	"seatech/internal/domain/repository"
	mockRepo "seatech/internal/mocks/repository"
	mockService "seatech/internal/mocks/service"
	"seatech/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		RefreshRepo:  refreshRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		refreshRepo:  refreshRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Name:     "Test Buyer",
		Password: "Str0ng!pass",
	}

	fx.hasher.EXPECT().Hash("Str0ng!pass").Return("$2a$12$hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, "buyer@example.com", account.Email)
					account.ID = uuid.New()
				}).
				Return(nil)
			mockAccountRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "$2a$12$hashed", auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", output.Account.Email)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Str0ng!pass",
	}

	fx.hasher.EXPECT().Hash("Str0ng!pass").Return("$2a$12$hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
				Return(&entity.Account{ID: uuid.New(), Email: "taken@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestUserService_Register_WeakPasswordRejectedBeforeStore(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("weak").Return("", domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Password: "weak",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "buyer@example.com"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(account, nil)
	fx.accountRepo.EXPECT().FindAuthentication(ctx, accountID).
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "$2a$12$hashed"}, nil)
	fx.hasher.EXPECT().Check("Str0ng!pass", "$2a$12$hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(accountID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, session *entity.RefreshToken) {
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, hashToken("refresh-token"), session.TokenHash)
			assert.True(t, session.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, account, output.Account)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").
		Return(&entity.Account{ID: accountID, Email: "buyer@example.com"}, nil)
	fx.accountRepo.EXPECT().FindAuthentication(ctx, accountID).
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "$2a$12$hashed"}, nil)
	fx.hasher.EXPECT().Check("bad", "$2a$12$hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "bad",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
