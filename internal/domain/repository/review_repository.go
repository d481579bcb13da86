package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists business reviews.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByBusiness retrieves all reviews of a business, newest first.
	FindReviewsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error)

	// FindReviewByCustomerAndBusiness retrieves a customer's review of a business.
	FindReviewByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (*entity.Review, error)

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
