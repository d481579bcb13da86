// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyTier is the reward level derived from accumulated points.
type LoyaltyTier string

const (
	// LoyaltyTierBronze is the entry tier.
	LoyaltyTierBronze LoyaltyTier = "bronze"
	// LoyaltyTierSilver is reached at 500 points.
	LoyaltyTierSilver LoyaltyTier = "silver"
	// LoyaltyTierGold is reached at 2000 points.
	LoyaltyTierGold LoyaltyTier = "gold"
)

// String returns the string representation of the LoyaltyTier.
func (t LoyaltyTier) String() string {
	return string(t)
}

// TierForPoints maps a points balance to its tier.
func TierForPoints(points int) LoyaltyTier {
	switch {
	case points >= 2000:
		return LoyaltyTierGold
	case points >= 500:
		return LoyaltyTierSilver
	default:
		return LoyaltyTierBronze
	}
}

// LoyaltyAccount tracks a customer's reward points across the marketplace.
type LoyaltyAccount struct {
	UserID    uuid.UUID   `json:"user_id"`    // The ID of the customer the account belongs to.
	Points    int         `json:"points"`     // Current points balance.
	Tier      LoyaltyTier `json:"tier"`       // Tier derived from the balance.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last accrual or redemption.
}
