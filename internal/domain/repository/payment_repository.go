package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository persists marketplace-side payment records. The gateway
// itself is an external collaborator; only references and outcomes land here.
type PaymentRepository interface {
	// CreatePayment persists a new payment record.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByOrder retrieves the payment record of an order.
	FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// UpdatePaymentStatus sets the settlement state and gateway reference.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, reference string) error
}
