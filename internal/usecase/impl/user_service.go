// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthVerifier service.OAuthVerifier
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		oauthVerifier: params.OAuthVerifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// rolesOf derives the role claims from the profiles attached to a user.
func rolesOf(user *entity.User) []string {
	roles := make([]string, 0, 2)
	if user.CustomerProfile != nil {
		roles = append(roles, entity.RoleCustomer.String())
	}
	if user.MerchantProfile != nil {
		roles = append(roles, entity.RoleMerchant.String())
	}

	return roles
}

// RegisterCustomer creates a new customer account.
func (srv *userService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering customer", slog.String("email", input.Email))

	user := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Name:  input.Name,
		Phone: input.Phone,
		CustomerProfile: &entity.CustomerProfile{
			UpdatedAt: time.Now(),
		},
	}

	return srv.register(ctx, user, input.Password)
}

// RegisterMerchant creates a new merchant account.
func (srv *userService) RegisterMerchant(ctx context.Context, input *usecase.RegisterMerchantInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering merchant", slog.String("email", input.Email))

	user := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Name:  input.Name,
		Phone: input.Phone,
		MerchantProfile: &entity.MerchantProfile{
			BusinessLicense: input.BusinessLicense,
			PayoutAccount:   input.PayoutAccount,
			UpdatedAt:       time.Now(),
		},
	}

	return srv.register(ctx, user, input.Password)
}

func (srv *userService) register(ctx context.Context, user *entity.User, password string) (*usecase.RegisterOutput, error) {
	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.CreateUser(ctx, user, passwordHash); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	passwordHash, err := srv.userRepo.FindPasswordHashByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find password hash by email")
	}

	if !srv.hasher.Check(input.Password, passwordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.issueToken(ctx, user)
}

// LoginWithGoogle verifies a Google ID token and signs the user in, creating
// a customer account on first contact.
func (srv *userService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, oauthUser.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = &entity.User{
			ID:    uuid.New(),
			Email: oauthUser.Email,
			Name:  oauthUser.Name,
			CustomerProfile: &entity.CustomerProfile{
				UpdatedAt: time.Now(),
			},
		}
		// No password credential for externally verified accounts.
		if err := srv.userRepo.CreateUser(ctx, user, ""); err != nil {
			return nil, errors.Wrap(err, "failed to create user from Google sign-in")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.issueToken(ctx, user)
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, rolesOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

// GetProfile retrieves the caller's account with profiles.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateProfile edits the caller's identity fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	user.Name = input.Name
	user.Phone = input.Phone
	if user.CustomerProfile != nil {
		user.CustomerProfile.DefaultAddress = input.DefaultAddress
		user.CustomerProfile.UpdatedAt = time.Now()
	}

	if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}
