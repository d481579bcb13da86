package client

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// BusinessListOptions are the catalog query parameters. Zero values disable
// the corresponding filter.
type BusinessListOptions struct {
	Search    string
	Type      string
	Category  string
	MinRating float64 // 0 disables
	Active    string  // "", "all", "true", "false"
	Sort      string  // rating | newest | name | nearest
	Latitude  float64
	Longitude float64
	Page      int
	PageSize  int
}

func (o BusinessListOptions) values() url.Values {
	q := url.Values{}
	setString(q, "search", o.Search)
	setString(q, "type", o.Type)
	setString(q, "category", o.Category)
	setString(q, "active", o.Active)
	setString(q, "sort", o.Sort)
	if o.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(o.MinRating, 'f', -1, 64))
	}
	if o.Sort == "nearest" {
		q.Set("lat", strconv.FormatFloat(o.Latitude, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(o.Longitude, 'f', -1, 64))
	}
	setPage(q, o.Page, o.PageSize)

	return q
}

// ProductListOptions are the product catalog query parameters.
type ProductListOptions struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	Veg      string // "", "all", "true", "false"
	InStock  string
	Sort     string // price-low | price-high | newest | name
	Page     int
	PageSize int
}

func (o ProductListOptions) values() url.Values {
	q := url.Values{}
	setString(q, "search", o.Search)
	setString(q, "category", o.Category)
	setString(q, "veg", o.Veg)
	setString(q, "in_stock", o.InStock)
	setString(q, "sort", o.Sort)
	if o.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(o.MinPrice, 'f', -1, 64))
	}
	if o.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(o.MaxPrice, 'f', -1, 64))
	}
	setPage(q, o.Page, o.PageSize)

	return q
}

// OrderListOptions are the order history query parameters.
type OrderListOptions struct {
	Status   string // "", "all" or one lifecycle status
	Sort     string // newest | amount-high | amount-low
	Page     int
	PageSize int
}

func (o OrderListOptions) values() url.Values {
	q := url.Values{}
	setString(q, "status", o.Status)
	setString(q, "sort", o.Sort)
	setPage(q, o.Page, o.PageSize)

	return q
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setPage(q url.Values, page, pageSize int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
}

// LoginResult carries the token and account returned by a login call.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// Login signs in with email and password. The returned token is not stored;
// hand it to the TokenSource to authenticate subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/login", body, &result, false); err != nil {
		return nil, err
	}

	return &result, nil
}

// Businesses retrieves the public storefront catalog.
func (c *Client) Businesses(ctx context.Context, opts BusinessListOptions) (*ListPage[Business], error) {
	var page ListPage[Business]
	if err := c.get(ctx, "/businesses", opts.values(), &page, false); err != nil {
		return nil, err
	}

	return &page, nil
}

// Business retrieves one storefront.
func (c *Client) Business(ctx context.Context, id string) (*Business, error) {
	var business Business
	if err := c.get(ctx, "/businesses/"+id, nil, &business, false); err != nil {
		return nil, err
	}

	return &business, nil
}

// BusinessProducts retrieves one storefront's catalog.
func (c *Client) BusinessProducts(ctx context.Context, businessID string, opts ProductListOptions) (*ListPage[Product], error) {
	var page ListPage[Product]
	if err := c.get(ctx, "/businesses/"+businessID+"/products", opts.values(), &page, false); err != nil {
		return nil, err
	}

	return &page, nil
}

// Product retrieves one catalog item.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/products/"+id, nil, &product, false); err != nil {
		return nil, err
	}

	return &product, nil
}

// BusinessReviews retrieves a storefront's reviews.
func (c *Client) BusinessReviews(ctx context.Context, businessID string) ([]Review, error) {
	var reviews []Review
	if err := c.get(ctx, "/businesses/"+businessID+"/reviews", nil, &reviews, false); err != nil {
		return nil, err
	}

	return reviews, nil
}

// ValidatePromo checks a code against a subtotal before checkout.
func (c *Client) ValidatePromo(ctx context.Context, businessID, code string, subtotal float64) (*PromoVerdict, error) {
	var verdict PromoVerdict
	body := map[string]any{"code": code, "subtotal": subtotal}
	if err := c.post(ctx, "/businesses/"+businessID+"/promos/validate", body, &verdict, false); err != nil {
		return nil, err
	}

	return &verdict, nil
}

// Profile retrieves the caller's account.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/user/profile", nil, &user, true); err != nil {
		return nil, err
	}

	return &user, nil
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	BusinessID    string             `json:"business_id"`
	Items         []OrderItemRequest `json:"items"`
	Address       string             `json:"address"`
	PromoCode     string             `json:"promo_code,omitempty"`
	PaymentMethod string             `json:"payment_method"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrder submits a new order.
func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	var order Order
	if err := c.post(ctx, "/user/orders", req, &order, true); err != nil {
		return nil, err
	}

	return &order, nil
}

// Orders retrieves the caller's order history.
func (c *Client) Orders(ctx context.Context, opts OrderListOptions) (*ListPage[Order], error) {
	var page ListPage[Order]
	if err := c.get(ctx, "/user/orders", opts.values(), &page, true); err != nil {
		return nil, err
	}

	return &page, nil
}

// Order retrieves one of the caller's orders.
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.get(ctx, "/user/orders/"+id, nil, &order, true); err != nil {
		return nil, err
	}

	return &order, nil
}

// Loyalty retrieves the caller's points balance and tier.
func (c *Client) Loyalty(ctx context.Context) (*LoyaltyAccount, error) {
	var account LoyaltyAccount
	if err := c.get(ctx, "/user/loyalty", nil, &account, true); err != nil {
		return nil, err
	}

	return &account, nil
}

// Notifications retrieves the caller's inbox.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.get(ctx, "/user/notifications", nil, &notifications, true); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead flags one inbox entry as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.post(ctx, "/user/notifications/"+id+"/read", nil, nil, true)
}

// MarkAllNotificationsRead flags the whole inbox as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/user/notifications/read-all", nil, nil, true)
}

// OwnBusinesses retrieves the merchant's storefronts.
func (c *Client) OwnBusinesses(ctx context.Context) ([]Business, error) {
	var businesses []Business
	if err := c.get(ctx, "/merchant/businesses", nil, &businesses, true); err != nil {
		return nil, err
	}

	return businesses, nil
}

// BusinessRequest is the create/update payload for a storefront.
type BusinessRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Category    string  `json:"category,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty"`
	Address     string  `json:"address,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

// CreateBusiness registers a new storefront.
func (c *Client) CreateBusiness(ctx context.Context, req BusinessRequest) (*Business, error) {
	var business Business
	if err := c.post(ctx, "/merchant/businesses", req, &business, true); err != nil {
		return nil, err
	}

	return &business, nil
}

// BusinessDraftRequest carries one step of the registration form. Only set
// fields are sent; the server keeps saved values for the rest.
type BusinessDraftRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Step        *int     `json:"step,omitempty"`
}

// SaveBusinessDraft merges one registration form step into the caller's draft.
func (c *Client) SaveBusinessDraft(ctx context.Context, req BusinessDraftRequest) (*BusinessDraft, error) {
	var draft BusinessDraft
	if err := c.put(ctx, "/merchant/businesses/draft", req, &draft, true); err != nil {
		return nil, err
	}

	return &draft, nil
}

// BusinessDraft retrieves the caller's saved registration draft.
func (c *Client) BusinessDraft(ctx context.Context) (*BusinessDraft, error) {
	var draft BusinessDraft
	if err := c.get(ctx, "/merchant/businesses/draft", nil, &draft, true); err != nil {
		return nil, err
	}

	return &draft, nil
}

// DiscardBusinessDraft removes the caller's saved registration draft.
func (c *Client) DiscardBusinessDraft(ctx context.Context) error {
	return c.delete(ctx, "/merchant/businesses/draft", true)
}

// UpdateBusiness edits a storefront.
func (c *Client) UpdateBusiness(ctx context.Context, id string, req BusinessRequest) (*Business, error) {
	var business Business
	if err := c.put(ctx, "/merchant/businesses/"+id, req, &business, true); err != nil {
		return nil, err
	}

	return &business, nil
}

// SetBusinessActive toggles whether a storefront accepts orders.
func (c *Client) SetBusinessActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"is_active": active}

	return c.patch(ctx, "/merchant/businesses/"+id+"/status", body, nil, true)
}

// DeleteBusiness removes a storefront.
func (c *Client) DeleteBusiness(ctx context.Context, id string) error {
	return c.delete(ctx, "/merchant/businesses/"+id, true)
}

// ProductRequest is the create/update payload for a catalog item.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	IsVeg       bool    `json:"is_veg"`
}

// CreateProduct adds a catalog item to a storefront.
func (c *Client) CreateProduct(ctx context.Context, businessID string, req ProductRequest) (*Product, error) {
	var product Product
	if err := c.post(ctx, "/merchant/businesses/"+businessID+"/products", req, &product, true); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct edits a catalog item.
func (c *Client) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	var product Product
	if err := c.put(ctx, "/merchant/products/"+id, req, &product, true); err != nil {
		return nil, err
	}

	return &product, nil
}

// SetProductStock toggles a catalog item's availability.
func (c *Client) SetProductStock(ctx context.Context, id string, inStock bool) error {
	body := map[string]bool{"in_stock": inStock}

	return c.patch(ctx, "/merchant/products/"+id+"/stock", body, nil, true)
}

// DeleteProduct removes a catalog item.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/merchant/products/"+id, true)
}

// BusinessOrders retrieves one storefront's orders for the merchant.
func (c *Client) BusinessOrders(ctx context.Context, businessID string, opts OrderListOptions) (*ListPage[Order], error) {
	var page ListPage[Order]
	if err := c.get(ctx, "/merchant/businesses/"+businessID+"/orders", opts.values(), &page, true); err != nil {
		return nil, err
	}

	return &page, nil
}

// UpdateOrderStatus moves an order to a new lifecycle status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*Order, error) {
	var order Order
	body := map[string]string{"status": status}
	if err := c.patch(ctx, "/merchant/orders/"+orderID+"/status", body, &order, true); err != nil {
		return nil, err
	}

	return &order, nil
}

// PromoCodeRequest is the create/update payload for a discount code.
type PromoCodeRequest struct {
	Code           string    `json:"code"`
	Description    string    `json:"description,omitempty"`
	DiscountType   string    `json:"discount_type"`
	DiscountValue  float64   `json:"discount_value"`
	MinOrderAmount float64   `json:"min_order_amount,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	MaxUses        int       `json:"max_uses,omitempty"`
	IsActive       bool      `json:"is_active"`
}

// CreatePromoCode adds a discount code to a storefront.
func (c *Client) CreatePromoCode(ctx context.Context, businessID string, req PromoCodeRequest) (*PromoCode, error) {
	var promo PromoCode
	if err := c.post(ctx, "/merchant/businesses/"+businessID+"/promos", req, &promo, true); err != nil {
		return nil, err
	}

	return &promo, nil
}

// BusinessPromoCodes retrieves a storefront's discount codes.
func (c *Client) BusinessPromoCodes(ctx context.Context, businessID string) ([]PromoCode, error) {
	var promos []PromoCode
	if err := c.get(ctx, "/merchant/businesses/"+businessID+"/promos", nil, &promos, true); err != nil {
		return nil, err
	}

	return promos, nil
}

// DeletePromoCode removes a discount code.
func (c *Client) DeletePromoCode(ctx context.Context, id string) error {
	return c.delete(ctx, "/merchant/promos/"+id, true)
}
