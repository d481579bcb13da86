package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessDraft holds a partially completed business registration. Merchants
// fill the registration form over several steps; each step saves whatever it
// has, and completeness is only enforced when the business is submitted.
// One draft per merchant.
type BusinessDraft struct {
	OwnerID     uuid.UUID `json:"owner_id"`    // The merchant the draft belongs to.
	Name        string    `json:"name"`        // Display name, may still be empty.
	Description string    `json:"description"` // Storefront description.
	Type        string    `json:"type"`        // Business type, unvalidated until submit.
	Category    string    `json:"category"`    // Free-form category label.
	Phone       string    `json:"phone"`       // Contact phone number.
	Email       string    `json:"email"`       // Contact email address.
	Address     string    `json:"address"`     // Street address.
	Latitude    float64   `json:"latitude"`    // Geographic latitude, 0 when unset.
	Longitude   float64   `json:"longitude"`   // Geographic longitude, 0 when unset.
	Step        int       `json:"step"`        // Highest form step the merchant saved.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last saved step.
}
