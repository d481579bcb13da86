// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a customer's rating and comment for a business.
type Review struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the review.
	BusinessID   uuid.UUID `json:"business_id"`   // The ID of the reviewed business.
	CustomerID   uuid.UUID `json:"customer_id"`   // The ID of the customer who wrote the review.
	CustomerName string    `json:"customer_name"` // Display name captured at submission time.
	Rating       int       `json:"rating"`        // Star rating, 1 to 5 inclusive.
	Comment      string    `json:"comment"`       // Free-form review text, may be empty.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the review was submitted.
}
