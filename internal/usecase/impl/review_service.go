package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		businessRepo: params.BusinessRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview submits a customer's review and recomputes the business's
// average rating in the same transaction.
func (srv *reviewService) CreateReview(ctx context.Context, customerID, businessID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	if _, err := srv.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	customer, err := srv.userRepo.FindUserByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	review := &entity.Review{
		ID:           uuid.New(),
		BusinessID:   businessID,
		CustomerID:   customerID,
		CustomerName: customer.Name,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()
		businessRepo := repoFactory.NewBusinessRepository()

		if err := reviewRepo.CreateReview(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		return srv.recomputeRating(ctx, reviewRepo, businessRepo, businessID)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.String("review_id", review.ID.String()),
		slog.String("business_id", businessID.String()),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}

// ListBusinessReviews retrieves all reviews of a business, newest first.
func (srv *reviewService) ListBusinessReviews(ctx context.Context, businessID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	reviews, err := srv.reviewRepo.FindReviewsByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by business")
	}

	return reviews, nil
}

// DeleteReview removes the caller's review and recomputes the average rating.
func (srv *reviewService) DeleteReview(ctx context.Context, customerID, businessID uuid.UUID) error {
	review, err := srv.reviewRepo.FindReviewByCustomerAndBusiness(ctx, customerID, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review by customer and business")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()
		businessRepo := repoFactory.NewBusinessRepository()

		if err := reviewRepo.DeleteReview(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return srv.recomputeRating(ctx, reviewRepo, businessRepo, businessID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Review deleted",
		slog.String("review_id", review.ID.String()),
		slog.String("business_id", businessID.String()),
	)

	return nil
}

// recomputeRating rereads all reviews and stores the fresh average.
func (srv *reviewService) recomputeRating(ctx context.Context, reviewRepo repository.ReviewRepository, businessRepo repository.BusinessRepository, businessID uuid.UUID) error {
	reviews, err := reviewRepo.FindReviewsByBusiness(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to find reviews by business")
	}

	var rating float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	if err := businessRepo.UpdateBusinessRating(ctx, businessID, rating, len(reviews)); err != nil {
		return errors.Wrap(err, "failed to update business rating")
	}

	return nil
}
