package service

import (
	"context"
)

// OrderEvent is published whenever an order is placed or changes status, so
// downstream consumers (analytics, merchant dashboards) can react without
// polling.
type OrderEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	OrderID    string  `json:"order_id"`
	BusinessID string  `json:"business_id"`
	CustomerID string  `json:"customer_id"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
	PromoCode  string  `json:"promo_code,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
