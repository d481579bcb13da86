package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PromoCodeRepository persists business-scoped discount codes.
type PromoCodeRepository interface {
	// CreatePromoCode persists a new promo code.
	CreatePromoCode(ctx context.Context, promo *entity.PromoCode) error

	// FindPromoCodeByID retrieves a promo code by its unique ID.
	FindPromoCodeByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)

	// FindPromoCodeByCode retrieves a promo code by business and code string.
	FindPromoCodeByCode(ctx context.Context, businessID uuid.UUID, code string) (*entity.PromoCode, error)

	// FindPromoCodesByBusiness retrieves all codes of a business, newest first.
	FindPromoCodesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.PromoCode, error)

	// UpdatePromoCode persists changes to an existing promo code.
	UpdatePromoCode(ctx context.Context, promo *entity.PromoCode) error

	// IncrementUseCount records one redemption of the code.
	IncrementUseCount(ctx context.Context, id uuid.UUID) error

	// DeletePromoCode removes a promo code.
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
}
