package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// promoServiceFixtures holds all test dependencies for promo service tests.
type promoServiceFixtures struct {
	service      usecase.PromoUsecase
	promoRepo    *mockRepo.MockPromoCodeRepository
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestPromoService(t *testing.T) promoServiceFixtures {
	promoRepo := mockRepo.NewMockPromoCodeRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	service := NewPromoService(PromoServiceParams{
		PromoRepo:    promoRepo,
		BusinessRepo: businessRepo,
		Logger:       newDiscardLogger(),
	})

	return promoServiceFixtures{
		service:      service,
		promoRepo:    promoRepo,
		businessRepo: businessRepo,
	}
}

func validPromoInput() *usecase.PromoCodeInput {
	return &usecase.PromoCodeInput{
		Code:           "WELCOME10",
		Description:    "10% off your first order",
		DiscountType:   entity.DiscountTypePercent,
		DiscountValue:  10,
		MinOrderAmount: 100,
		StartsAt:       time.Now().Add(-time.Hour),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		MaxUses:        100,
		IsActive:       true,
	}
}

func TestPromoService_CreatePromoCode_Success(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	input := validPromoInput()

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.promoRepo.EXPECT().
		CreatePromoCode(ctx, mock.AnythingOfType("*entity.PromoCode")).
		Run(func(ctx context.Context, promo *entity.PromoCode) {
			assert.Equal(t, business.ID, promo.BusinessID)
			assert.Equal(t, input.Code, promo.Code)
		}).
		Return(nil)

	promo, err := fx.service.CreatePromoCode(ctx, ownerID, business.ID, input)

	require.NoError(t, err)
	require.NotNil(t, promo)
	assert.Equal(t, entity.DiscountTypePercent, promo.DiscountType)
}

func TestPromoService_CreatePromoCode_Duplicate(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.promoRepo.EXPECT().
		CreatePromoCode(ctx, mock.AnythingOfType("*entity.PromoCode")).
		Return(repository.ErrDuplicatePromoCode)

	promo, err := fx.service.CreatePromoCode(ctx, ownerID, business.ID, validPromoInput())

	assert.Error(t, err)
	assert.Nil(t, promo)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicatePromoCode))
}

func TestPromoService_CreatePromoCode_NotOwner(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	promo, err := fx.service.CreatePromoCode(ctx, uuid.New(), business.ID, validPromoInput())

	assert.Error(t, err)
	assert.Nil(t, promo)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestPromoService_UpdatePromoCode_UnknownDiscountType(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	promo := &entity.PromoCode{ID: uuid.New(), BusinessID: business.ID}
	input := validPromoInput()
	input.DiscountType = entity.DiscountType("bogo")

	fx.promoRepo.EXPECT().FindPromoCodeByID(ctx, promo.ID).Return(promo, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	updated, err := fx.service.UpdatePromoCode(ctx, ownerID, promo.ID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
}

func TestPromoService_DeletePromoCode_Success(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	promo := &entity.PromoCode{ID: uuid.New(), BusinessID: business.ID}

	fx.promoRepo.EXPECT().FindPromoCodeByID(ctx, promo.ID).Return(promo, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.promoRepo.EXPECT().DeletePromoCode(ctx, promo.ID).Return(nil)

	err := fx.service.DeletePromoCode(ctx, ownerID, promo.ID)

	require.NoError(t, err)
}

func TestPromoService_ValidatePromoCode_Valid(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	businessID := uuid.New()
	promo := &entity.PromoCode{
		ID:             uuid.New(),
		BusinessID:     businessID,
		Code:           "FLAT50",
		DiscountType:   entity.DiscountTypeFlat,
		DiscountValue:  50,
		MinOrderAmount: 200,
		StartsAt:       time.Now().Add(-time.Hour),
		ExpiresAt:      time.Now().Add(time.Hour),
		IsActive:       true,
	}

	fx.promoRepo.EXPECT().FindPromoCodeByCode(ctx, businessID, "FLAT50").Return(promo, nil)

	verdict, err := fx.service.ValidatePromoCode(ctx, businessID, "FLAT50", 300)

	require.NoError(t, err)
	assert.True(t, verdict.Valid)
	assert.Equal(t, 50.0, verdict.Discount)
	assert.Empty(t, verdict.Reason)
}

func TestPromoService_ValidatePromoCode_Verdicts(t *testing.T) {
	now := time.Now()
	base := entity.PromoCode{
		DiscountType:   entity.DiscountTypeFlat,
		DiscountValue:  50,
		MinOrderAmount: 100,
		StartsAt:       now.Add(-time.Hour),
		ExpiresAt:      now.Add(time.Hour),
		IsActive:       true,
	}

	tests := []struct {
		name     string
		mutate   func(p *entity.PromoCode)
		subtotal float64
		reason   string
	}{
		{
			name:     "inactive code",
			mutate:   func(p *entity.PromoCode) { p.IsActive = false },
			subtotal: 300,
			reason:   "code is inactive",
		},
		{
			name:     "not started",
			mutate:   func(p *entity.PromoCode) { p.StartsAt = now.Add(time.Hour) },
			subtotal: 300,
			reason:   "code is not active yet",
		},
		{
			name:     "expired",
			mutate:   func(p *entity.PromoCode) { p.ExpiresAt = now.Add(-time.Minute) },
			subtotal: 300,
			reason:   "code has expired",
		},
		{
			name:     "usage cap reached",
			mutate:   func(p *entity.PromoCode) { p.MaxUses = 10; p.UseCount = 10 },
			subtotal: 300,
			reason:   "code usage limit reached",
		},
		{
			name:     "subtotal too low",
			mutate:   func(p *entity.PromoCode) {},
			subtotal: 50,
			reason:   "order subtotal below promo minimum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromoService(t)

			ctx := context.Background()
			businessID := uuid.New()
			promo := base
			promo.ID = uuid.New()
			promo.BusinessID = businessID
			promo.Code = "FLAT50"
			tt.mutate(&promo)

			fx.promoRepo.EXPECT().
				FindPromoCodeByCode(ctx, businessID, "FLAT50").
				Return(&promo, nil)

			verdict, err := fx.service.ValidatePromoCode(ctx, businessID, "FLAT50", tt.subtotal)

			require.NoError(t, err)
			assert.False(t, verdict.Valid)
			assert.Equal(t, tt.reason, verdict.Reason)
		})
	}
}

func TestPromoService_ValidatePromoCode_NotFound(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.promoRepo.EXPECT().
		FindPromoCodeByCode(ctx, businessID, "NOPE").
		Return(nil, repository.ErrPromoCodeNotFound)

	verdict, err := fx.service.ValidatePromoCode(ctx, businessID, "NOPE", 300)

	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "code not found", verdict.Reason)
}
