// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, used as the login identifier.
	Name            string           // The user's display name.
	Phone           string           // The user's contact phone number.
	CustomerProfile *CustomerProfile // Customer-role profile. Nil if this person has no customer role.
	MerchantProfile *MerchantProfile // Merchant-role profile. Nil if this person has no merchant role.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// CustomerProfile holds data specific to the "customer" role.
type CustomerProfile struct {
	UserID         uuid.UUID // Foreign Key that links this profile to a core User entity.
	DefaultAddress string    // Default delivery address used at checkout.
	UpdatedAt      time.Time // Timestamp of the last modification to this profile.
}

// MerchantProfile holds data specific to the "merchant" role.
type MerchantProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	BusinessLicense string    // The merchant's official business license number.
	PayoutAccount   string    // Masked payout account reference for settlements.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}
