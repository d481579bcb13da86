package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/listing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput defines the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	IsVeg       bool
}

// ProductListQuery carries catalog filter and sort criteria for one
// business's products.
type ProductListQuery struct {
	Search   string
	Category string // "all" or empty disables
	MinPrice *float64
	MaxPrice *float64
	VegOnly  listing.TriState
	InStock  listing.TriState
	Sort     string // price-low | price-high | newest | name
	Page     int
	PageSize int
}

// --- Output DTOs ---

// ProductListOutput is a filtered, sorted and paginated catalog slice.
type ProductListOutput struct {
	Items    []*entity.Product `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	// CreateProduct adds a product to a business owned by the caller.
	CreateProduct(ctx context.Context, ownerID, businessID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves one product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListBusinessProducts applies the query criteria to a business's catalog.
	ListBusinessProducts(ctx context.Context, businessID uuid.UUID, query *ProductListQuery) (*ProductListOutput, error)

	// UpdateProduct edits a product on a business owned by the caller.
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// SetProductStock toggles availability.
	SetProductStock(ctx context.Context, ownerID, productID uuid.UUID, inStock bool) error

	// DeleteProduct removes a product on a business owned by the caller.
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error

	// UploadProductImage stores a product image and sets it on the product.
	UploadProductImage(ctx context.Context, ownerID, productID uuid.UUID, upload *MediaUpload) (string, error)
}
