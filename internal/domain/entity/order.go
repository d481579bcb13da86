// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer's order against a single business.
type Order struct {
	ID         uuid.UUID   `json:"id"`          // The Global Unique Identifier (GUID) for the order.
	BusinessID uuid.UUID   `json:"business_id"` // The ID of the business the order was placed with.
	CustomerID uuid.UUID   `json:"customer_id"` // The ID of the customer who placed the order.
	Items      []OrderItem `json:"items"`       // The line items of the order.
	Subtotal   float64     `json:"subtotal"`    // Sum of line item amounts before discount.
	Discount   float64     `json:"discount"`    // Discount applied through a promo code, zero when none.
	Total      float64     `json:"total"`       // Amount payable after discount.
	PromoCode  string      `json:"promo_code"`  // The promo code applied to the order, empty when none.
	Status     OrderStatus `json:"status"`      // Current lifecycle status.
	Address    string      `json:"address"`     // Delivery address captured at checkout.
	PlacedAt   time.Time   `json:"placed_at"`   // Timestamp of when the order was placed.
	UpdatedAt  time.Time   `json:"updated_at"`  // Timestamp of the last status change.
}

// OrderItem is a single product line within an order. Name and unit price are
// denormalised at checkout so later catalog edits do not rewrite history.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Amount returns the line total for the item.
func (i OrderItem) Amount() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
