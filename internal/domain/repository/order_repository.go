package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	// CreateOrder persists a new order with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves a customer's orders, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByBusiness retrieves a business's orders, newest first.
	FindOrdersByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets the flat status enum on an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
