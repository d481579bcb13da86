package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	userRepo      *mockRepo.MockUserRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	oauthVerifier *mockSvc.MockOAuthVerifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthVerifier := mockSvc.NewMockOAuthVerifier(t)

	service := NewUserService(UserServiceParams{
		UserRepo:      userRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		OAuthVerifier: oauthVerifier,
		Logger:        newDiscardLogger(),
	})

	return userServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		oauthVerifier: oauthVerifier,
	}
}

func TestUserService_RegisterCustomer_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Password123!",
		Phone:    "+919876543210",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			assert.Equal(t, input.Email, user.Email)
			assert.NotNil(t, user.CustomerProfile)
			assert.Nil(t, user.MerchantProfile)
		}).
		Return(nil)

	output, err := fx.service.RegisterCustomer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Name, output.User.Name)
}

func TestUserService_RegisterCustomer_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.RegisterCustomer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterMerchant_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterMerchantInput{
		Name:            "Vikram Shetty",
		Email:           "vikram@example.com",
		Password:        "Password123!",
		BusinessLicense: "FSSAI-12345",
		PayoutAccount:   "vikram@upi",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			require.NotNil(t, user.MerchantProfile)
			assert.Equal(t, input.BusinessLicense, user.MerchantProfile.BusinessLicense)
		}).
		Return(nil)

	output, err := fx.service.RegisterMerchant(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "Password123!",
	}
	user := &entity.User{
		ID:              uuid.New(),
		Email:           input.Email,
		Name:            "Asha Rao",
		CustomerProfile: &entity.CustomerProfile{},
	}

	fx.userRepo.EXPECT().FindPasswordHashByEmail(ctx, input.Email).Return("hashed_password", nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.userRepo.EXPECT().FindUserByEmail(ctx, input.Email).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateToken(user.ID, []string{entity.RoleCustomer.String()}).
		Return("access_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "wrong",
	}

	fx.userRepo.EXPECT().FindPasswordHashByEmail(ctx, input.Email).Return("hashed_password", nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindPasswordHashByEmail(ctx, input.Email).
		Return("", repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_LoginWithGoogle_ExistingUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.GoogleLoginInput{IDToken: "google_id_token"}
	user := &entity.User{
		ID:              uuid.New(),
		Email:           "asha@example.com",
		Name:            "Asha Rao",
		CustomerProfile: &entity.CustomerProfile{},
	}

	fx.oauthVerifier.EXPECT().
		VerifyIDToken(ctx, input.IDToken).
		Return(&service.OAuthUser{Email: user.Email, Name: user.Name, EmailVerified: true}, nil)
	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateToken(user.ID, []string{entity.RoleCustomer.String()}).
		Return("access_token", nil)

	output, err := fx.service.LoginWithGoogle(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_LoginWithGoogle_FirstContactCreatesCustomer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.GoogleLoginInput{IDToken: "google_id_token"}

	fx.oauthVerifier.EXPECT().
		VerifyIDToken(ctx, input.IDToken).
		Return(&service.OAuthUser{Email: "new@example.com", Name: "New User"}, nil)
	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), "").
		Run(func(ctx context.Context, user *entity.User, passwordHash string) {
			assert.NotNil(t, user.CustomerProfile)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), []string{entity.RoleCustomer.String()}).
		Return("access_token", nil)

	output, err := fx.service.LoginWithGoogle(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_LoginWithGoogle_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.GoogleLoginInput{IDToken: "bad_token"}

	fx.oauthVerifier.EXPECT().
		VerifyIDToken(ctx, input.IDToken).
		Return(nil, errors.New("token expired"))

	output, err := fx.service.LoginWithGoogle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:              userID,
		Email:           "asha@example.com",
		Name:            "Asha Rao",
		CustomerProfile: &entity.CustomerProfile{},
	}
	input := &usecase.UpdateProfileInput{
		Name:           "Asha R",
		Phone:          "+919876543210",
		DefaultAddress: "12 MG Road, Bengaluru",
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Name, user.Name)
			assert.Equal(t, input.DefaultAddress, user.CustomerProfile.DefaultAddress)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Name, user.Name)
	assert.Equal(t, input.Phone, user.Phone)
}
