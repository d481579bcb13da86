// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP publisher used in development.
	PubSubProviderLocal = "local"
)

const (
	// NotificationKindOrder marks order lifecycle notifications.
	NotificationKindOrder = "order"
	// NotificationKindPromo marks promotional notifications.
	NotificationKindPromo = "promo"
	// NotificationKindSystem marks marketplace announcements.
	NotificationKindSystem = "system"
)

// LoyaltyPointsPerRupee controls accrual: one point per ten rupees spent.
const LoyaltyPointsPerRupee = 0.1
