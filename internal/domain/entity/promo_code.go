// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how a promo code's value is interpreted.
type DiscountType string

const (
	// DiscountTypeFlat deducts a fixed amount from the order subtotal.
	DiscountTypeFlat DiscountType = "flat"
	// DiscountTypePercent deducts a percentage of the order subtotal.
	DiscountTypePercent DiscountType = "percent"
)

// String returns the string representation of the DiscountType.
func (t DiscountType) String() string {
	return string(t)
}

// IsValid checks if the DiscountType is a valid value.
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFlat || t == DiscountTypePercent
}

// PromoCode represents a business-scoped discount code.
type PromoCode struct {
	ID             uuid.UUID    `json:"id"`               // The Global Unique Identifier (GUID) for the promo code.
	BusinessID     uuid.UUID    `json:"business_id"`      // The ID of the business the code belongs to.
	Code           string       `json:"code"`             // The customer-facing code, unique per business.
	Description    string       `json:"description"`      // Short copy shown alongside the code.
	DiscountType   DiscountType `json:"discount_type"`    // Flat or percent.
	DiscountValue  float64      `json:"discount_value"`   // Amount or percentage, per DiscountType.
	MinOrderAmount float64      `json:"min_order_amount"` // Minimum subtotal required to apply the code.
	StartsAt       time.Time    `json:"starts_at"`        // Beginning of the validity window.
	ExpiresAt      time.Time    `json:"expires_at"`       // End of the validity window.
	MaxUses        int          `json:"max_uses"`         // Usage cap, zero means unlimited.
	UseCount       int          `json:"use_count"`        // Number of times the code has been redeemed.
	IsActive       bool         `json:"is_active"`        // Manual kill switch for the code.
	CreatedAt      time.Time    `json:"created_at"`       // Timestamp of when the code was created.
	UpdatedAt      time.Time    `json:"updated_at"`       // Timestamp of the last modification.
}

// ValidAt reports whether the code can be redeemed at the given instant,
// considering the active flag, the validity window and the usage cap.
func (p *PromoCode) ValidAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if now.Before(p.StartsAt) || now.After(p.ExpiresAt) {
		return false
	}
	if p.MaxUses > 0 && p.UseCount >= p.MaxUses {
		return false
	}

	return true
}

// DiscountFor returns the discount amount the code yields for a subtotal.
// The discount never exceeds the subtotal.
func (p *PromoCode) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch p.DiscountType {
	case DiscountTypeFlat:
		discount = p.DiscountValue
	case DiscountTypePercent:
		discount = subtotal * p.DiscountValue / 100
	}
	if discount > subtotal {
		discount = subtotal
	}

	return discount
}
