package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	loyaltyRepo repository.LoyaltyRepository
	logger      *slog.Logger
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	LoyaltyRepo repository.LoyaltyRepository
	Logger      *slog.Logger
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		loyaltyRepo: params.LoyaltyRepo,
		logger:      params.Logger,
	}
}

// GetAccount retrieves the caller's loyalty account. Customers who never
// earned points get a zero-balance bronze account.
func (srv *loyaltyService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	account, err := srv.loyaltyRepo.FindAccountByUser(ctx, userID)
	if errors.Is(err, repository.ErrLoyaltyNotFound) {
		return &entity.LoyaltyAccount{
			UserID: userID,
			Points: 0,
			Tier:   entity.LoyaltyTierBronze,
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty account")
	}

	return account, nil
}
