// Package repository defines the persistence contracts of the domain layer.
// Implementations live under internal/infra/persistence.
package repository

import "errors"

// Sentinel errors shared across repository implementations. Services compare
// against these instead of driver-specific errors.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrBusinessNotFound      = errors.New("business not found")
	ErrBusinessDraftNotFound = errors.New("business draft not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrPromoCodeNotFound     = errors.New("promo code not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrDeviceNotFound        = errors.New("device not found")
	ErrLoyaltyNotFound       = errors.New("loyalty account not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrDuplicatePromoCode    = errors.New("promo code already exists for business")
	ErrDuplicateReview       = errors.New("customer already reviewed this business")
)
