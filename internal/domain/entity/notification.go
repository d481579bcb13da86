// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents an in-app message delivered to a user.
type Notification struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID  `json:"user_id"`    // The ID of the user the notification is addressed to.
	Kind      string     `json:"kind"`       // Category of the notification (order, promo, system).
	Title     string     `json:"title"`      // Short headline.
	Body      string     `json:"body"`       // Message text.
	OrderID   *uuid.UUID `json:"order_id"`   // Optional reference to the order that triggered the message.
	IsRead    bool       `json:"is_read"`    // Whether the user has opened the notification.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the notification was created.
}
