package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/listing"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service       usecase.BusinessUsecase
	businessRepo  *mockRepo.MockBusinessRepository
	draftRepo     *mockRepo.MockBusinessDraftRepository
	qrcodeService *mockSvc.MockQRCodeService
	mediaStorage  *mockSvc.MockMediaStorage
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	draftRepo := mockRepo.NewMockBusinessDraftRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	service := NewBusinessService(BusinessServiceParams{
		BusinessRepo:  businessRepo,
		DraftRepo:     draftRepo,
		QRCodeService: qrcodeService,
		MediaStorage:  mediaStorage,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return businessServiceFixtures{
		service:       service,
		businessRepo:  businessRepo,
		draftRepo:     draftRepo,
		qrcodeService: qrcodeService,
		mediaStorage:  mediaStorage,
	}
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.BusinessInput{
		Name:     "Shanti Tiffins",
		Type:     entity.BusinessTypeTiffin,
		Category: "south-indian",
		Address:  "4th Block, Jayanagar, Bengaluru",
	}

	fx.businessRepo.EXPECT().
		CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(ctx context.Context, business *entity.Business) {
			assert.Equal(t, ownerID, business.OwnerID)
			assert.True(t, business.IsActive)
		}).
		Return(nil)
	fx.draftRepo.EXPECT().DeleteBusinessDraft(ctx, ownerID).Return(repository.ErrBusinessDraftNotFound)

	business, err := fx.service.CreateBusiness(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, business)
	assert.Equal(t, input.Name, business.Name)
	assert.Equal(t, entity.BusinessTypeTiffin, business.Type)
}

func TestBusinessService_CreateBusiness_UnknownType(t *testing.T) {
	fx := createTestBusinessService(t)

	business, err := fx.service.CreateBusiness(context.Background(), uuid.New(), &usecase.BusinessInput{
		Name: "Shanti Tiffins",
		Type: entity.BusinessType("food-truck"),
	})

	assert.Error(t, err)
	assert.Nil(t, business)
}

func TestBusinessService_ListBusinesses_FilterAndSearch(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Shanti Tiffins", Type: entity.BusinessTypeTiffin, Category: "south-indian", IsActive: true},
		{ID: uuid.New(), Name: "Udupi Grand", Type: entity.BusinessTypeRestaurant, Category: "south-indian", IsActive: true},
		{ID: uuid.New(), Name: "Closed Corner", Type: entity.BusinessTypeTiffin, Category: "north-indian", IsActive: false},
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{
		Type:   "tiffin",
		Active: listing.True,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Total)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "Shanti Tiffins", output.Items[0].Name)
}

func TestBusinessService_ListBusinesses_SearchIsCaseInsensitive(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Shanti Tiffins", Type: entity.BusinessTypeTiffin, IsActive: true},
		{ID: uuid.New(), Name: "Udupi Grand", Type: entity.BusinessTypeRestaurant, IsActive: true},
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{Search: "shanti"})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.True(t, strings.EqualFold("Shanti Tiffins", output.Items[0].Name))
}

func TestBusinessService_ListBusinesses_MinRatingThreshold(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Unreviewed", Rating: 0, RatingCount: 0, IsActive: true},
		{ID: uuid.New(), Name: "Decent", Rating: 3.5, RatingCount: 8, IsActive: true},
		{ID: uuid.New(), Name: "Good", Rating: 4.2, RatingCount: 12, IsActive: true},
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{
		MinRating: listing.Float(4.0),
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "Good", output.Items[0].Name)
}

func TestBusinessService_ListBusinesses_RatingSortSkipsUnreviewed(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Unreviewed", Rating: 0, RatingCount: 0, IsActive: true},
		{ID: uuid.New(), Name: "Good", Rating: 4.2, RatingCount: 12, IsActive: true},
		{ID: uuid.New(), Name: "Better", Rating: 4.8, RatingCount: 40, IsActive: true},
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{Sort: "rating"})

	require.NoError(t, err)
	require.Len(t, output.Items, 3)
	assert.Equal(t, "Better", output.Items[0].Name)
	assert.Equal(t, "Good", output.Items[1].Name)
	assert.Equal(t, "Unreviewed", output.Items[2].Name)
}

func TestBusinessService_ListBusinesses_NearestSort(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	// Bengaluru city centre as the caller's location.
	lat, lng := 12.9716, 77.5946
	businesses := []*entity.Business{
		{ID: uuid.New(), Name: "Mysuru Branch", Latitude: 12.2958, Longitude: 76.6394, IsActive: true},
		{ID: uuid.New(), Name: "Jayanagar Branch", Latitude: 12.9250, Longitude: 77.5938, IsActive: true},
		{ID: uuid.New(), Name: "Unlocated", Latitude: 0, Longitude: 0, IsActive: true},
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{
		Sort:      "nearest",
		Latitude:  &lat,
		Longitude: &lng,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 3)
	assert.Equal(t, "Jayanagar Branch", output.Items[0].Name)
	assert.Equal(t, "Mysuru Branch", output.Items[1].Name)
	assert.Equal(t, "Unlocated", output.Items[2].Name)
}

func TestBusinessService_ListBusinesses_Pagination(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businesses := make([]*entity.Business, 0, 25)
	for i := 0; i < 25; i++ {
		businesses = append(businesses, &entity.Business{
			ID:        uuid.New(),
			Name:      "Storefront",
			IsActive:  true,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}

	fx.businessRepo.EXPECT().ListBusinesses(ctx).Return(businesses, nil)

	output, err := fx.service.ListBusinesses(ctx, &usecase.BusinessListQuery{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 25, output.Total)
	assert.Len(t, output.Items, 10)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 10, output.PageSize)
}

func TestBusinessService_UpdateBusiness_NotOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	updated, err := fx.service.UpdateBusiness(ctx, uuid.New(), business.ID, &usecase.BusinessInput{
		Type: entity.BusinessTypeRestaurant,
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestBusinessService_SetBusinessStatus_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID, IsActive: true}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().UpdateBusinessStatus(ctx, business.ID, false).Return(nil)

	err := fx.service.SetBusinessStatus(ctx, ownerID, business.ID, false)

	require.NoError(t, err)
}

func TestBusinessService_GenerateStorefrontQR_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), IsActive: true}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.qrcodeService.EXPECT().GenerateStorefrontQR(business.ID).Return(png, nil)

	qrCode, err := fx.service.GenerateStorefrontQR(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, png, qrCode)
}

func TestBusinessService_GenerateStorefrontQR_UnknownBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindBusinessByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	qrCode, err := fx.service.GenerateStorefrontQR(ctx, businessID)

	assert.Error(t, err)
	assert.Nil(t, qrCode)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_UploadBusinessImage_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	upload := &usecase.MediaUpload{
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("image-bytes"),
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.mediaStorage.EXPECT().
		Save(ctx, "businesses/"+business.ID.String()+"/cover.jpg", "image/jpeg", upload.Content).
		Return("https://cdn.example.com/cover.jpg", nil)
	fx.businessRepo.EXPECT().
		UpdateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(ctx context.Context, updated *entity.Business) {
			assert.Equal(t, "https://cdn.example.com/cover.jpg", updated.ImageURL)
		}).
		Return(nil)

	url, err := fx.service.UploadBusinessImage(ctx, ownerID, business.ID, upload)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", url)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestBusinessService_SaveBusinessDraft_FirstStep(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.draftRepo.EXPECT().
		FindBusinessDraftByOwner(ctx, ownerID).
		Return(nil, repository.ErrBusinessDraftNotFound)
	fx.draftRepo.EXPECT().
		UpsertBusinessDraft(ctx, mock.AnythingOfType("*entity.BusinessDraft")).
		Return(nil)

	draft, err := fx.service.SaveBusinessDraft(ctx, ownerID, &usecase.BusinessDraftInput{
		Name: strPtr("Shanti Tiffins"),
		Type: strPtr("tiffin"),
		Step: intPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, draft.OwnerID)
	assert.Equal(t, "Shanti Tiffins", draft.Name)
	assert.Equal(t, "tiffin", draft.Type)
	assert.Equal(t, 1, draft.Step)
}

func TestBusinessService_SaveBusinessDraft_MergesPartialStep(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	saved := &entity.BusinessDraft{
		OwnerID: ownerID,
		Name:    "Shanti Tiffins",
		Type:    "tiffin",
		Step:    2,
	}

	fx.draftRepo.EXPECT().FindBusinessDraftByOwner(ctx, ownerID).Return(saved, nil)
	fx.draftRepo.EXPECT().
		UpsertBusinessDraft(ctx, mock.AnythingOfType("*entity.BusinessDraft")).
		Return(nil)

	// A later save of an earlier step must not lose data or regress progress.
	draft, err := fx.service.SaveBusinessDraft(ctx, ownerID, &usecase.BusinessDraftInput{
		Address: strPtr("4th Block, Jayanagar, Bengaluru"),
		Step:    intPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, "Shanti Tiffins", draft.Name)
	assert.Equal(t, "tiffin", draft.Type)
	assert.Equal(t, "4th Block, Jayanagar, Bengaluru", draft.Address)
	assert.Equal(t, 2, draft.Step)
}

func TestBusinessService_GetBusinessDraft_NotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.draftRepo.EXPECT().
		FindBusinessDraftByOwner(ctx, ownerID).
		Return(nil, repository.ErrBusinessDraftNotFound)

	draft, err := fx.service.GetBusinessDraft(ctx, ownerID)

	assert.Nil(t, draft)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessDraftNotFound)
}

func TestBusinessService_DiscardBusinessDraft_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.draftRepo.EXPECT().DeleteBusinessDraft(ctx, ownerID).Return(nil)

	require.NoError(t, fx.service.DiscardBusinessDraft(ctx, ownerID))
}

func TestBusinessService_CreateBusiness_DiscardsDraft(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().
		CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
		Return(nil)
	fx.draftRepo.EXPECT().DeleteBusinessDraft(ctx, ownerID).Return(nil)

	_, err := fx.service.CreateBusiness(ctx, ownerID, &usecase.BusinessInput{
		Name: "Shanti Tiffins",
		Type: entity.BusinessTypeTiffin,
	})

	require.NoError(t, err)
}
