// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a single item sold by a business.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	BusinessID  uuid.UUID `json:"business_id"` // The ID of the business selling this product.
	Name        string    `json:"name"`        // The display name of the product.
	Description string    `json:"description"` // A short description of the product.
	Category    string    `json:"category"`    // Category label used for catalog filtering.
	Price       float64   `json:"price"`       // Selling price in the marketplace currency (INR).
	ImageURL    string    `json:"image_url"`   // Product image.
	InStock     bool      `json:"in_stock"`    // Whether the product is currently available.
	IsVeg       bool      `json:"is_veg"`      // Vegetarian flag used by catalog filters.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this product was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
