package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PromoCodeInput defines the editable fields of a promo code.
type PromoCodeInput struct {
	Code           string
	Description    string
	DiscountType   entity.DiscountType
	DiscountValue  float64
	MinOrderAmount float64
	StartsAt       time.Time
	ExpiresAt      time.Time
	MaxUses        int
	IsActive       bool
}

// PromoValidationOutput is the server-side verdict on a code at checkout.
type PromoValidationOutput struct {
	Valid    bool    `json:"valid"`
	Reason   string  `json:"reason,omitempty"` // empty when valid
	Discount float64 `json:"discount"`
}

// PromoUsecase defines the interface for promo code management and
// checkout-time validation.
type PromoUsecase interface {
	// CreatePromoCode adds a code to a business owned by the caller.
	CreatePromoCode(ctx context.Context, ownerID, businessID uuid.UUID, input *PromoCodeInput) (*entity.PromoCode, error)

	// ListBusinessPromoCodes retrieves all codes of a business owned by the caller.
	ListBusinessPromoCodes(ctx context.Context, ownerID, businessID uuid.UUID) ([]*entity.PromoCode, error)

	// UpdatePromoCode edits a code on a business owned by the caller.
	UpdatePromoCode(ctx context.Context, ownerID, promoID uuid.UUID, input *PromoCodeInput) (*entity.PromoCode, error)

	// DeletePromoCode removes a code on a business owned by the caller.
	DeletePromoCode(ctx context.Context, ownerID, promoID uuid.UUID) error

	// ValidatePromoCode checks a code against a subtotal without redeeming it.
	ValidatePromoCode(ctx context.Context, businessID uuid.UUID, code string, subtotal float64) (*PromoValidationOutput, error)
}
