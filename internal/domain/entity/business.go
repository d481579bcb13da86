// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a merchant-owned storefront listed on the marketplace.
type Business struct {
	ID          uuid.UUID    `json:"id"`           // The Global Unique Identifier (GUID) for the business.
	OwnerID     uuid.UUID    `json:"owner_id"`     // The ID of the merchant user who owns this business.
	Name        string       `json:"name"`         // The display name of the business.
	Description string       `json:"description"`  // A short description shown on the storefront.
	Type        BusinessType `json:"type"`         // The business type (restaurant, tiffin, grocery).
	Category    string       `json:"category"`     // Free-form category label, e.g. "north-indian", "organic".
	Phone       string       `json:"phone"`        // Contact phone number.
	Email       string       `json:"email"`        // Contact email address.
	Address     string       `json:"address"`      // The full street address of the storefront.
	Latitude    float64      `json:"latitude"`     // Geographic latitude of the storefront.
	Longitude   float64      `json:"longitude"`    // Geographic longitude of the storefront.
	ImageURL    string       `json:"image_url"`    // Cover image for the storefront card.
	Rating      float64      `json:"rating"`       // Average review rating, 0 when unreviewed.
	RatingCount int          `json:"rating_count"` // Number of reviews behind the average.
	IsActive    bool         `json:"is_active"`    // Whether the business is currently accepting orders.
	CreatedAt   time.Time    `json:"created_at"`   // Timestamp of when this business was registered.
	UpdatedAt   time.Time    `json:"updated_at"`   // Timestamp of the last modification.
}
