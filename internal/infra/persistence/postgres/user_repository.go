package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user together with its password hash and any
// role profiles attached to the entity.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Backfill generated values onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.CustomerProfile != nil {
		user.CustomerProfile.UserID = userM.ID
	}
	if user.MerchantProfile != nil {
		user.MerchantProfile.UserID = userM.ID
	}

	return nil
}

// FindUserByID retrieves a user with its role profiles by unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("MerchantProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a user with its role profiles by login email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("MerchantProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindPasswordHashByEmail retrieves only the stored password hash for login.
func (repo *userRepository) FindPasswordHashByEmail(ctx context.Context, email string) (string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Select("password_hash").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find password hash by email")
	}

	return userM.PasswordHash, nil
}

// UpdateUser persists changes to identity fields and attached profiles.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"name":  user.Name,
		"phone": user.Phone,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if user.CustomerProfile != nil {
		profileM := fromCustomerProfileDomain(user.CustomerProfile)
		if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
			return errors.Wrap(err, "failed to update customer profile")
		}
	}

	return nil
}

// AttachMerchantProfile adds a merchant role to an existing user.
func (repo *userRepository) AttachMerchantProfile(ctx context.Context, profile *entity.MerchantProfile) error {
	profileM := fromMerchantProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The user already holds the merchant role.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach merchant profile")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		Phone:           data.Phone,
		CustomerProfile: toCustomerProfileDomain(data.CustomerProfile),
		MerchantProfile: toMerchantProfileDomain(data.MerchantProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		Phone:           data.Phone,
		CustomerProfile: fromCustomerProfileDomain(data.CustomerProfile),
		MerchantProfile: fromMerchantProfileDomain(data.MerchantProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		UserID:         data.UserID,
		DefaultAddress: data.DefaultAddress,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		UserID:         data.UserID,
		DefaultAddress: data.DefaultAddress,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toMerchantProfileDomain(data *model.MerchantProfileModel) *entity.MerchantProfile {
	if data == nil {
		return nil
	}

	return &entity.MerchantProfile{
		UserID:          data.UserID,
		BusinessLicense: data.BusinessLicense,
		PayoutAccount:   data.PayoutAccount,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromMerchantProfileDomain(data *entity.MerchantProfile) *model.MerchantProfileModel {
	if data == nil {
		return nil
	}

	return &model.MerchantProfileModel{
		UserID:          data.UserID,
		BusinessLicense: data.BusinessLicense,
		PayoutAccount:   data.PayoutAccount,
		UpdatedAt:       data.UpdatedAt,
	}
}
