package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// LoyaltyUsecase defines the interface for the loyalty program.
type LoyaltyUsecase interface {
	// GetAccount retrieves the caller's loyalty account. Customers who never
	// earned points get a zero-balance bronze account.
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)
}
