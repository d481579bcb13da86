package client

import "time"

// View models mirror the API's wire format. IDs stay strings on this side;
// the SDK never needs to do UUID arithmetic.

// Business is a storefront as rendered on catalog pages.
type Business struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"rating_count"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BusinessDraft is a partially completed business registration saved between
// form steps.
type BusinessDraft struct {
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Step        int       `json:"step"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is one catalog item of a business.
type Product struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	IsVeg       bool      `json:"is_veg"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem is a denormalised order line.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a placed order with its lifecycle status.
type Order struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"business_id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Discount   float64     `json:"discount"`
	Total      float64     `json:"total"`
	PromoCode  string      `json:"promo_code"`
	Status     string      `json:"status"`
	Address    string      `json:"address"`
	PlacedAt   time.Time   `json:"placed_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Review is one customer review of a business.
type Review struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// PromoCode is a business-scoped discount code.
type PromoCode struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id"`
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discount_type"`
	DiscountValue  float64   `json:"discount_value"`
	MinOrderAmount float64   `json:"min_order_amount"`
	StartsAt       time.Time `json:"starts_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	MaxUses        int       `json:"max_uses"`
	UseCount       int       `json:"use_count"`
	IsActive       bool      `json:"is_active"`
}

// PromoVerdict is the checkout-time validation result for a code.
type PromoVerdict struct {
	Valid    bool    `json:"valid"`
	Reason   string  `json:"reason,omitempty"`
	Discount float64 `json:"discount"`
}

// Notification is one inbox entry.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OrderID   *string   `json:"order_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// LoyaltyAccount is the caller's points balance and tier.
type LoyaltyAccount struct {
	UserID    string    `json:"user_id"`
	Points    int       `json:"points"`
	Tier      string    `json:"tier"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is the caller's account as returned by auth and profile endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ListPage wraps a filtered, paginated collection response.
type ListPage[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
