package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service          usecase.OrderUsecase
	txManager        *mockRepo.MockTransactionManager
	orderRepo        *mockRepo.MockOrderRepository
	businessRepo     *mockRepo.MockBusinessRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushService      *mockSvc.MockPushService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushService := mockSvc.NewMockPushService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:        txManager,
		OrderRepo:        orderRepo,
		BusinessRepo:     businessRepo,
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		PushService:      pushService,
		EventPublisher:   eventPublisher,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:          service,
		txManager:        txManager,
		orderRepo:        orderRepo,
		businessRepo:     businessRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushService:      pushService,
		eventPublisher:   eventPublisher,
	}
}

// expectBestEffortSideEffects covers the post-commit event and notification
// calls that every successful order mutation performs.
func (fx orderServiceFixtures) expectBestEffortSideEffects(ctx context.Context, userID uuid.UUID) {
	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	ownerID := uuid.New()
	business := &entity.Business{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Shanti Tiffins",
		IsActive: true,
	}
	product := &entity.Product{
		ID:         uuid.New(),
		BusinessID: business.ID,
		Name:       "Masala Dosa",
		Price:      80,
		InStock:    true,
	}
	input := &usecase.PlaceOrderInput{
		BusinessID:    business.ID,
		Items:         []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		Address:       "12 MG Road, Bengaluru",
		PaymentMethod: "upi",
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPromoRepo := mockRepo.NewMockPromoCodeRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewPromoCodeRepository().Return(mockPromoRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

			mockProductRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			mockPaymentRepo.EXPECT().
				CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
				Run(func(ctx context.Context, payment *entity.Payment) {
					assert.Equal(t, 160.0, payment.Amount)
					assert.Equal(t, "upi", payment.Method)
					assert.Equal(t, entity.PaymentStatusPending, payment.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.expectBestEffortSideEffects(ctx, ownerID)

	order, err := fx.service.PlaceOrder(ctx, customerID, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 160.0, order.Subtotal)
	assert.Equal(t, 0.0, order.Discount)
	assert.Equal(t, 160.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Masala Dosa", order.Items[0].Name)
	assert.Equal(t, 80.0, order.Items[0].UnitPrice)
}

func TestOrderService_PlaceOrder_WithPromo(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID, Name: "Shanti Tiffins", IsActive: true}
	product := &entity.Product{
		ID:         uuid.New(),
		BusinessID: business.ID,
		Name:       "Thali",
		Price:      200,
		InStock:    true,
	}
	promo := &entity.PromoCode{
		ID:             uuid.New(),
		BusinessID:     business.ID,
		Code:           "WELCOME10",
		DiscountType:   entity.DiscountTypePercent,
		DiscountValue:  10,
		MinOrderAmount: 100,
		StartsAt:       time.Now().Add(-time.Hour),
		ExpiresAt:      time.Now().Add(time.Hour),
		IsActive:       true,
	}
	input := &usecase.PlaceOrderInput{
		BusinessID:    business.ID,
		Items:         []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		Address:       "12 MG Road, Bengaluru",
		PromoCode:     promo.Code,
		PaymentMethod: "card",
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPromoRepo := mockRepo.NewMockPromoCodeRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewPromoCodeRepository().Return(mockPromoRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

			mockProductRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
			mockPromoRepo.EXPECT().
				FindPromoCodeByCode(ctx, business.ID, promo.Code).
				Return(promo, nil)
			mockPromoRepo.EXPECT().IncrementUseCount(ctx, promo.ID).Return(nil)
			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			mockPaymentRepo.EXPECT().
				CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.expectBestEffortSideEffects(ctx, ownerID)

	order, err := fx.service.PlaceOrder(ctx, customerID, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 20.0, order.Discount)
	assert.Equal(t, 180.0, order.Total)
	assert.Equal(t, promo.Code, order.PromoCode)
}

func TestOrderService_PlaceOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		BusinessID: uuid.New(),
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyOrder))
}

func TestOrderService_PlaceOrder_InactiveBusiness(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), IsActive: false}
	input := &usecase.PlaceOrderInput{
		BusinessID: business.ID,
		Items:      []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessInactive))
}

func TestOrderService_PlaceOrder_OutOfStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), IsActive: true}
	product := &entity.Product{
		ID:         uuid.New(),
		BusinessID: business.ID,
		Name:       "Filter Coffee",
		Price:      40,
		InStock:    false,
	}
	input := &usecase.PlaceOrderInput{
		BusinessID:    business.ID,
		Items:         []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "cod",
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockPromoRepo := mockRepo.NewMockPromoCodeRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewPromoCodeRepository().Return(mockPromoRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

			mockProductRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrProductOutOfStock.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, product.Name, appErr.(*domainerrors.BaseError).Details())
}

func TestOrderService_GetOrder_CustomerVisibility(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		CustomerID: customerID,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	found, err := fx.service.GetOrder(ctx, customerID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetOrder_StrangerDenied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		CustomerID: uuid.New(),
	}
	business := &entity.Business{ID: order.BusinessID, OwnerID: uuid.New()}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, order.BusinessID).Return(business, nil)

	found, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListCustomerOrders_FilterSortPaginate(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	now := time.Now()
	orders := []*entity.Order{
		{ID: uuid.New(), Status: entity.OrderStatusDelivered, Total: 120, PlacedAt: now.Add(-3 * time.Hour)},
		{ID: uuid.New(), Status: entity.OrderStatusPending, Total: 300, PlacedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Status: entity.OrderStatusDelivered, Total: 450, PlacedAt: now.Add(-time.Hour)},
	}

	fx.orderRepo.EXPECT().FindOrdersByCustomer(ctx, customerID).Return(orders, nil)

	output, err := fx.service.ListCustomerOrders(ctx, customerID, &usecase.OrderListQuery{
		Status: "delivered",
		Sort:   "amount-high",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Total)
	require.Len(t, output.Items, 2)
	assert.Equal(t, 450.0, output.Items[0].Total)
	assert.Equal(t, 120.0, output.Items[1].Total)
}

func TestOrderService_ListBusinessOrders_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	output, err := fx.service.ListBusinessOrders(ctx, uuid.New(), business.ID, &usecase.OrderListQuery{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestOrderService_UpdateOrderStatus_DeliveredAccruesLoyalty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	customerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID, Name: "Shanti Tiffins"}
	order := &entity.Order{
		ID:         uuid.New(),
		BusinessID: business.ID,
		CustomerID: customerID,
		Total:      450,
		Status:     entity.OrderStatusOutForDelivery,
		PlacedAt:   time.Now().Add(-time.Hour),
	}
	payment := &entity.Payment{ID: uuid.New(), OrderID: order.ID, Status: entity.PaymentStatusPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockLoyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewLoyaltyRepository().Return(mockLoyaltyRepo)
			mockFactory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

			mockOrderRepo.EXPECT().
				UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered).
				Return(nil)

			mockLoyaltyRepo.EXPECT().
				FindAccountByUser(ctx, customerID).
				Return(&entity.LoyaltyAccount{UserID: customerID, Points: 480, Tier: entity.LoyaltyTierBronze}, nil)
			mockLoyaltyRepo.EXPECT().
				UpsertAccount(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).
				Run(func(ctx context.Context, account *entity.LoyaltyAccount) {
					// 480 existing + floor(450 * 0.1) crosses the silver threshold.
					assert.Equal(t, 525, account.Points)
					assert.Equal(t, entity.LoyaltyTierSilver, account.Tier)
				}).
				Return(nil)

			mockPaymentRepo.EXPECT().FindPaymentByOrder(ctx, order.ID).Return(payment, nil)
			mockPaymentRepo.EXPECT().
				UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCaptured, payment.Reference).
				Return(nil)

			return fn(mockFactory)
		})

	fx.expectBestEffortSideEffects(ctx, customerID)

	updated, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, entity.OrderStatusDelivered)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatus("shipped"))

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_UpdateOrderStatus_TerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	order := &entity.Order{
		ID:         uuid.New(),
		BusinessID: business.ID,
		CustomerID: uuid.New(),
		Status:     entity.OrderStatusCancelled,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, ownerID, order.ID, entity.OrderStatusConfirmed)

	assert.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}
