package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// LoyaltyRepository persists customer loyalty accounts.
type LoyaltyRepository interface {
	// FindAccountByUser retrieves a customer's loyalty account.
	FindAccountByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)

	// UpsertAccount creates or updates the account with a new balance and tier.
	UpsertAccount(ctx context.Context, account *entity.LoyaltyAccount) error
}
