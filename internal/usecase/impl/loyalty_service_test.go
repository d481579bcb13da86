package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLoyaltyService(t *testing.T) (usecase.LoyaltyUsecase, *mockRepo.MockLoyaltyRepository) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)

	service := NewLoyaltyService(LoyaltyServiceParams{
		LoyaltyRepo: loyaltyRepo,
		Logger:      newDiscardLogger(),
	})

	return service, loyaltyRepo
}

func TestLoyaltyService_GetAccount_Existing(t *testing.T) {
	service, loyaltyRepo := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := &entity.LoyaltyAccount{UserID: userID, Points: 2100, Tier: entity.LoyaltyTierGold}

	loyaltyRepo.EXPECT().FindAccountByUser(ctx, userID).Return(account, nil)

	found, err := service.GetAccount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2100, found.Points)
	assert.Equal(t, entity.LoyaltyTierGold, found.Tier)
}

func TestLoyaltyService_GetAccount_DefaultsToBronze(t *testing.T) {
	service, loyaltyRepo := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	loyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(nil, repository.ErrLoyaltyNotFound)

	found, err := service.GetAccount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, 0, found.Points)
	assert.Equal(t, entity.LoyaltyTierBronze, found.Tier)
}

func TestLoyaltyService_GetAccount_RepoFailure(t *testing.T) {
	service, loyaltyRepo := createTestLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	loyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(nil, errors.New("connection reset"))

	found, err := service.GetAccount(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, found)
}
