package client

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrNotImplemented marks endpoints whose contract is still undefined
// pending backend availability.
var ErrNotImplemented = errors.New("client: endpoint not implemented")

// DataSource abstracts where catalog data comes from, so pages can run
// against the live API or a fabricated demo catalog without branching.
type DataSource interface {
	GetBusinesses(ctx context.Context, opts BusinessListOptions) ([]Business, error)
	GetBusiness(ctx context.Context, id string) (*Business, error)
	GetBusinessProducts(ctx context.Context, businessID string, opts ProductListOptions) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetOrders(ctx context.Context, opts OrderListOptions) ([]Order, error)
	GetNotifications(ctx context.Context) ([]Notification, error)
	GetLoyaltyAccount(ctx context.Context) (*LoyaltyAccount, error)

	// GetCart and GetWishlist always return ErrNotImplemented. Their true
	// contract is undefined until the backing endpoints exist; callers
	// render the empty state.
	GetCart(ctx context.Context) ([]Product, error)
	GetWishlist(ctx context.Context) ([]Product, error)
}

// NewDataSource selects the live or demo strategy at construction.
func NewDataSource(c *Client, demo bool) DataSource {
	if demo {
		return newMockSource()
	}

	return &liveSource{client: c}
}

// liveSource serves every read through the HTTP client.
type liveSource struct {
	client *Client
}

func (s *liveSource) GetBusinesses(ctx context.Context, opts BusinessListOptions) ([]Business, error) {
	page, err := s.client.Businesses(ctx, opts)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

func (s *liveSource) GetBusiness(ctx context.Context, id string) (*Business, error) {
	return s.client.Business(ctx, id)
}

func (s *liveSource) GetBusinessProducts(ctx context.Context, businessID string, opts ProductListOptions) ([]Product, error) {
	page, err := s.client.BusinessProducts(ctx, businessID, opts)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

func (s *liveSource) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.client.Product(ctx, id)
}

func (s *liveSource) GetOrders(ctx context.Context, opts OrderListOptions) ([]Order, error) {
	page, err := s.client.Orders(ctx, opts)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

func (s *liveSource) GetNotifications(ctx context.Context) ([]Notification, error) {
	return s.client.Notifications(ctx)
}

func (s *liveSource) GetLoyaltyAccount(ctx context.Context) (*LoyaltyAccount, error) {
	return s.client.Loyalty(ctx)
}

func (s *liveSource) GetCart(ctx context.Context) ([]Product, error) {
	return nil, ErrNotImplemented
}

func (s *liveSource) GetWishlist(ctx context.Context) ([]Product, error) {
	return nil, ErrNotImplemented
}

// mockSource serves a small fabricated catalog for demos and UI work
// without a running backend.
type mockSource struct {
	businesses []Business
	products   []Product
}

func newMockSource() *mockSource {
	now := time.Now()

	return &mockSource{
		businesses: []Business{
			{
				ID:          "demo-biz-1",
				Name:        "Shanti Tiffins",
				Description: "Home-style South Indian tiffin service",
				Type:        "tiffin",
				Category:    "south-indian",
				Address:     "4th Block, Jayanagar, Bengaluru",
				Latitude:    12.9250,
				Longitude:   77.5938,
				Rating:      4.6,
				RatingCount: 128,
				IsActive:    true,
				CreatedAt:   now.Add(-90 * 24 * time.Hour),
			},
			{
				ID:          "demo-biz-2",
				Name:        "Udupi Grand",
				Description: "Classic vegetarian restaurant",
				Type:        "restaurant",
				Category:    "south-indian",
				Address:     "MG Road, Bengaluru",
				Latitude:    12.9752,
				Longitude:   77.6057,
				Rating:      4.2,
				RatingCount: 412,
				IsActive:    true,
				CreatedAt:   now.Add(-400 * 24 * time.Hour),
			},
			{
				ID:          "demo-biz-3",
				Name:        "Green Basket",
				Description: "Organic produce and daily groceries",
				Type:        "grocery",
				Category:    "organic",
				Address:     "Indiranagar, Bengaluru",
				IsActive:    false,
				CreatedAt:   now.Add(-30 * 24 * time.Hour),
			},
		},
		products: []Product{
			{ID: "demo-prod-1", BusinessID: "demo-biz-1", Name: "Masala Dosa", Category: "breakfast", Price: 80, InStock: true, IsVeg: true},
			{ID: "demo-prod-2", BusinessID: "demo-biz-1", Name: "Bisi Bele Bath", Category: "lunch", Price: 110, InStock: true, IsVeg: true},
			{ID: "demo-prod-3", BusinessID: "demo-biz-2", Name: "Rava Idli", Category: "breakfast", Price: 70, InStock: false, IsVeg: true},
			{ID: "demo-prod-4", BusinessID: "demo-biz-3", Name: "Organic Tomatoes 1kg", Category: "vegetables", Price: 60, InStock: true, IsVeg: true},
		},
	}
}

func (s *mockSource) GetBusinesses(ctx context.Context, opts BusinessListOptions) ([]Business, error) {
	items := make([]Business, 0, len(s.businesses))
	for _, b := range s.businesses {
		if opts.Type != "" && opts.Type != "all" && b.Type != opts.Type {
			continue
		}
		items = append(items, b)
	}

	return items, nil
}

func (s *mockSource) GetBusiness(ctx context.Context, id string) (*Business, error) {
	for _, b := range s.businesses {
		if b.ID == id {
			found := b

			return &found, nil
		}
	}

	return nil, &APIError{Status: 404, Code: "BUSINESS_NOT_FOUND", Message: "Business not found"}
}

func (s *mockSource) GetBusinessProducts(ctx context.Context, businessID string, opts ProductListOptions) ([]Product, error) {
	items := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.BusinessID == businessID {
			items = append(items, p)
		}
	}

	return items, nil
}

func (s *mockSource) GetProduct(ctx context.Context, id string) (*Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			found := p

			return &found, nil
		}
	}

	return nil, &APIError{Status: 404, Code: "PRODUCT_NOT_FOUND", Message: "Product not found"}
}

func (s *mockSource) GetOrders(ctx context.Context, opts OrderListOptions) ([]Order, error) {
	return []Order{}, nil
}

func (s *mockSource) GetNotifications(ctx context.Context) ([]Notification, error) {
	return []Notification{}, nil
}

func (s *mockSource) GetLoyaltyAccount(ctx context.Context) (*LoyaltyAccount, error) {
	return &LoyaltyAccount{Points: 0, Tier: "bronze"}, nil
}

func (s *mockSource) GetCart(ctx context.Context) ([]Product, error) {
	return nil, ErrNotImplemented
}

func (s *mockSource) GetWishlist(ctx context.Context) ([]Product, error) {
	return nil, ErrNotImplemented
}
