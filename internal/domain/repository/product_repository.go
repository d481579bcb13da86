package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	// CreateProduct persists a new product and backfills generated fields.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByBusiness retrieves the full catalog of one business.
	FindProductsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProductStock toggles availability.
	UpdateProductStock(ctx context.Context, id uuid.UUID, inStock bool) error

	// DeleteProduct removes a product (soft delete).
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
