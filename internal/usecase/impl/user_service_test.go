package impl

import (
	"context"
	"testing"

	"vidly/internal/domain/entity"
	domainerrors "vidly/internal/domain/errors"
	"vidly/internal/domain/repository"
	mockRepo "vidly/internal/mocks/repository"
	mockService "vidly/internal/mocks/service"
	"vidly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	service := NewUserService(userRepo, hasher, tokenService, discardLogger())

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("sekret").
		Return("$2a$10$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Equal(t, "$2a$10$hash", user.PasswordHash)
			assert.False(t, user.IsAdmin)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		Generate(mock.AnythingOfType("uuid.UUID"), false).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Name:     "John Smith",
		Email:    "john@example.com",
		Password: "sekret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "john@example.com", output.User.Email)
	assert.False(t, output.User.IsAdmin)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("sekret").
		Return("$2a$10$hash", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Name:     "John Smith",
		Email:    "john@example.com",
		Password: "sekret",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		IsAdmin:      true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("sekret", "$2a$10$hash").
		Return(true)

	fx.tokenService.EXPECT().
		Generate(user.ID, true).
		Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "sekret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "sekret",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "john@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "john@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetByID_SanitizesOutput(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "John Smith",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	output, err := fx.service.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, output.ID)
	assert.Equal(t, "John Smith", output.Name)
}
