package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository persists user accounts, their credentials and role profiles.
type UserRepository interface {
	// CreateUser persists a new user together with its password hash and the
	// role profiles attached to the entity.
	CreateUser(ctx context.Context, user *entity.User, passwordHash string) error

	// FindUserByID retrieves a user with profiles by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user with profiles by login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindPasswordHashByEmail retrieves the stored password hash for login.
	FindPasswordHashByEmail(ctx context.Context, email string) (string, error)

	// UpdateUser persists changes to identity fields and profiles.
	UpdateUser(ctx context.Context, user *entity.User) error

	// AttachMerchantProfile adds a merchant role to an existing user.
	AttachMerchantProfile(ctx context.Context, profile *entity.MerchantProfile) error
}
