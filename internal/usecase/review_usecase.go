package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a business.
type CreateReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// CreateReview submits a customer's review and recomputes the business's
	// average rating.
	CreateReview(ctx context.Context, customerID, businessID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// ListBusinessReviews retrieves all reviews of a business, newest first.
	ListBusinessReviews(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error)

	// DeleteReview removes the caller's review of a business and recomputes
	// the average rating.
	DeleteReview(ctx context.Context, customerID, businessID uuid.UUID) error
}
