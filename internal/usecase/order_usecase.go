package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	BusinessID    uuid.UUID
	Items         []OrderItemInput
	Address       string
	PromoCode     string
	PaymentMethod string // upi | card | cod
}

// OrderListQuery carries order list filter and sort criteria.
type OrderListQuery struct {
	Status   string // order status, "all" or empty disables
	Sort     string // newest | amount-high | amount-low
	Page     int
	PageSize int
}

// --- Output DTOs ---

// OrderListOutput is a filtered, sorted and paginated order slice.
type OrderListOutput struct {
	Items    []*entity.Order `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// PlaceOrder checks stock and promo validity, prices the order inside a
	// transaction, records the payment and publishes an order event.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order visible to the requester (customer who
	// placed it or owner of the business it was placed with).
	GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error)

	// ListCustomerOrders applies the query criteria to the caller's orders.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, query *OrderListQuery) (*OrderListOutput, error)

	// ListBusinessOrders applies the query criteria to a business's orders.
	ListBusinessOrders(ctx context.Context, ownerID, businessID uuid.UUID, query *OrderListQuery) (*OrderListOutput, error)

	// UpdateOrderStatus moves an order to a new status. Delivered orders
	// accrue loyalty points; every change notifies the customer.
	UpdateOrderStatus(ctx context.Context, ownerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
