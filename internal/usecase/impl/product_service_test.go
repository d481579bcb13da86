package impl

import (
	"context"
	"testing"

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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	businessRepo *mockRepo.MockBusinessRepository
	mediaStorage *mockSvc.MockMediaStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		BusinessRepo: businessRepo,
		MediaStorage: mediaStorage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		businessRepo: businessRepo,
		mediaStorage: mediaStorage,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	input := &usecase.ProductInput{
		Name:     "Masala Dosa",
		Category: "breakfast",
		Price:    80,
		IsVeg:    true,
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, business.ID, product.BusinessID)
			assert.True(t, product.InStock)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, ownerID, business.ID, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, input.Name, product.Name)
	assert.True(t, product.IsVeg)
}

func TestProductService_CreateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	product, err := fx.service.CreateProduct(ctx, uuid.New(), business.ID, &usecase.ProductInput{Name: "Idli"})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestProductService_ListBusinessProducts_VegAndPriceRange(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	businessID := uuid.New()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Masala Dosa", Price: 80, IsVeg: true, InStock: true},
		{ID: uuid.New(), Name: "Chicken Biryani", Price: 220, IsVeg: false, InStock: true},
		{ID: uuid.New(), Name: "Paneer Thali", Price: 180, IsVeg: true, InStock: true},
	}

	fx.productRepo.EXPECT().FindProductsByBusiness(ctx, businessID).Return(products, nil)

	output, err := fx.service.ListBusinessProducts(ctx, businessID, &usecase.ProductListQuery{
		VegOnly:  listing.True,
		MinPrice: listing.Float(100),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Total)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "Paneer Thali", output.Items[0].Name)
}

func TestProductService_ListBusinessProducts_PriceSort(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	businessID := uuid.New()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Thali", Price: 180, InStock: true},
		{ID: uuid.New(), Name: "Coffee", Price: 40, InStock: true},
		{ID: uuid.New(), Name: "Dosa", Price: 80, InStock: true},
	}

	fx.productRepo.EXPECT().FindProductsByBusiness(ctx, businessID).Return(products, nil)

	output, err := fx.service.ListBusinessProducts(ctx, businessID, &usecase.ProductListQuery{
		Sort: "price-low",
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 3)
	assert.Equal(t, "Coffee", output.Items[0].Name)
	assert.Equal(t, "Dosa", output.Items[1].Name)
	assert.Equal(t, "Thali", output.Items[2].Name)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	product := &entity.Product{
		ID:         uuid.New(),
		BusinessID: business.ID,
		Name:       "Masala Dosa",
		Price:      80,
	}
	input := &usecase.ProductInput{
		Name:  "Ghee Masala Dosa",
		Price: 95,
		IsVeg: true,
	}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, ownerID, product.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ghee Masala Dosa", updated.Name)
	assert.Equal(t, 95.0, updated.Price)
}

func TestProductService_SetProductStock_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	product := &entity.Product{ID: uuid.New(), BusinessID: business.ID, InStock: true}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.productRepo.EXPECT().UpdateProductStock(ctx, product.ID, false).Return(nil)

	err := fx.service.SetProductStock(ctx, ownerID, product.ID, false)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}
	product := &entity.Product{ID: uuid.New(), BusinessID: business.ID}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	err := fx.service.DeleteProduct(ctx, uuid.New(), product.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}
