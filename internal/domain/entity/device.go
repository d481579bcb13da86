// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a device registered by a user for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device record.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns the device.
	FCMToken  string    `json:"fcm_token"`  // The Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"`  // Stable client-side device identifier.
	Platform  string    `json:"platform"`   // Device platform (ios, android, web).
	IsActive  bool      `json:"is_active"`  // Whether the device should still receive pushes.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last token refresh.
}
