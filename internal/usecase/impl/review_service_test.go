package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	txManager    *mockRepo.MockTransactionManager
	reviewRepo   *mockRepo.MockReviewRepository
	businessRepo *mockRepo.MockBusinessRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:    txManager,
		ReviewRepo:   reviewRepo,
		BusinessRepo: businessRepo,
		UserRepo:     userRepo,
		Logger:       newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:      service,
		txManager:    txManager,
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), Name: "Shanti Tiffins"}
	customer := &entity.User{ID: customerID, Name: "Asha Rao"}
	input := &usecase.CreateReviewInput{Rating: 5, Comment: "Best dosa in the neighbourhood"}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, customerID).Return(customer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockReviewRepo.EXPECT().
				CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					assert.Equal(t, "Asha Rao", review.CustomerName)
					assert.Equal(t, 5, review.Rating)
				}).
				Return(nil)

			// 5 + 4 averages to 4.5 after the new review lands.
			mockReviewRepo.EXPECT().
				FindReviewsByBusiness(ctx, business.ID).
				Return([]*entity.Review{{Rating: 5}, {Rating: 4}}, nil)
			mockBusinessRepo.EXPECT().
				UpdateBusinessRating(ctx, business.ID, 4.5, 2).
				Return(nil)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, customerID, business.ID, input)

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, customerID, review.CustomerID)
	assert.Equal(t, business.ID, review.BusinessID)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.CreateReview(context.Background(), uuid.New(), uuid.New(), &usecase.CreateReviewInput{
		Rating: 6,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	business := &entity.Business{ID: uuid.New()}
	customer := &entity.User{ID: customerID, Name: "Asha Rao"}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, customerID).Return(customer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockReviewRepo.EXPECT().
				CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
				Return(repository.ErrDuplicateReview)

			return fn(mockFactory)
		})

	review, err := fx.service.CreateReview(ctx, customerID, business.ID, &usecase.CreateReviewInput{Rating: 4})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_ListBusinessReviews_UnknownBusiness(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindBusinessByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	reviews, err := fx.service.ListBusinessReviews(ctx, businessID)

	assert.Error(t, err)
	assert.Nil(t, reviews)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestReviewService_DeleteReview_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	businessID := uuid.New()
	review := &entity.Review{
		ID:         uuid.New(),
		BusinessID: businessID,
		CustomerID: customerID,
		Rating:     2,
	}

	fx.reviewRepo.EXPECT().
		FindReviewByCustomerAndBusiness(ctx, customerID, businessID).
		Return(review, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockReviewRepo.EXPECT().DeleteReview(ctx, review.ID).Return(nil)

			// The last review is gone, the rating resets to zero.
			mockReviewRepo.EXPECT().
				FindReviewsByBusiness(ctx, businessID).
				Return([]*entity.Review{}, nil)
			mockBusinessRepo.EXPECT().
				UpdateBusinessRating(ctx, businessID, 0.0, 0).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteReview(ctx, customerID, businessID)

	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	businessID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindReviewByCustomerAndBusiness(ctx, customerID, businessID).
		Return(nil, repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, customerID, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}
