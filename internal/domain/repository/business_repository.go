package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessRepository persists marketplace businesses.
type BusinessRepository interface {
	// CreateBusiness persists a new business and backfills generated fields.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves a business by its unique ID.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBusinessesByOwner retrieves all businesses owned by a merchant.
	FindBusinessesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// ListBusinesses retrieves the full catalog, newest first. Filtering and
	// sorting happen in memory through the listing pipeline.
	ListBusinesses(ctx context.Context) ([]*entity.Business, error)

	// UpdateBusiness persists changes to an existing business.
	UpdateBusiness(ctx context.Context, business *entity.Business) error

	// UpdateBusinessStatus toggles the accepting-orders flag.
	UpdateBusinessStatus(ctx context.Context, id uuid.UUID, isActive bool) error

	// UpdateBusinessRating stores a recomputed review average.
	UpdateBusinessRating(ctx context.Context, id uuid.UUID, rating float64, count int) error

	// DeleteBusiness removes a business (soft delete).
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}
