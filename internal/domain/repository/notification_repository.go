package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser retrieves a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkNotificationRead flags a single notification as read.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	// MarkAllNotificationsRead flags all of a user's notifications as read.
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
