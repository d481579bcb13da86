package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo carries a device registration for push notifications.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// NotificationUsecase defines the interface for the in-app inbox and push
// device registration.
type NotificationUsecase interface {
	// ListNotifications retrieves the caller's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flags all of the caller's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// RegisterDevice registers or refreshes a push device for the caller.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) error

	// BroadcastPromo pushes a promotional message to every customer who
	// ordered from the business before.
	BroadcastPromo(ctx context.Context, ownerID, businessID uuid.UUID, title, body string) error
}
