// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the flat settlement state of a payment record.
type PaymentStatus string

const (
	// PaymentStatusPending indicates the gateway has not confirmed yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCaptured indicates the gateway confirmed the charge.
	PaymentStatusCaptured PaymentStatus = "captured"
	// PaymentStatusFailed indicates the charge failed or was declined.
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusRefunded indicates the charge was returned.
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCaptured, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Payment is the marketplace-side record of a gateway transaction. The
// gateway integration itself lives outside this service; only the reference
// and outcome are stored here.
type Payment struct {
	ID        uuid.UUID     `json:"id"`         // The Global Unique Identifier (GUID) for the payment.
	OrderID   uuid.UUID     `json:"order_id"`   // The ID of the order being paid for.
	Amount    float64       `json:"amount"`     // Charged amount in INR.
	Method    string        `json:"method"`     // Payment method label (upi, card, cod).
	Reference string        `json:"reference"`  // Gateway transaction reference, empty for cod.
	Status    PaymentStatus `json:"status"`     // Settlement state.
	CreatedAt time.Time     `json:"created_at"` // Timestamp of when the record was created.
	UpdatedAt time.Time     `json:"updated_at"` // Timestamp of the last status change.
}
