package impl

import (
	"context"
	"testing"

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

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	orderRepo        *mockRepo.MockOrderRepository
	businessRepo     *mockRepo.MockBusinessRepository
	pushService      *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	pushService := mockSvc.NewMockPushService(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		DeviceRepo:       deviceRepo,
		OrderRepo:        orderRepo,
		BusinessRepo:     businessRepo,
		PushService:      pushService,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		orderRepo:        orderRepo,
		businessRepo:     businessRepo,
		pushService:      pushService,
	}
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkNotificationRead(ctx, id).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_RegisterDevice_New(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "pixel-7-asha",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, info.FCMToken, device.FCMToken)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
}

func TestNotificationService_RegisterDevice_RefreshesKnownDevice(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "stale-token",
		DeviceID: "pixel-7-asha",
		Platform: "android",
	}
	info := &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "pixel-7-asha",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "fresh-token").Return(nil)

	err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
}

func TestNotificationService_BroadcastPromo_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID, Name: "Shanti Tiffins"}
	customerA := uuid.New()
	customerB := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), BusinessID: business.ID, CustomerID: customerA},
		{ID: uuid.New(), BusinessID: business.ID, CustomerID: customerB},
		// Repeat customer must receive a single notification.
		{ID: uuid.New(), BusinessID: business.ID, CustomerID: customerA},
	}
	staleDevice := &entity.UserDevice{ID: uuid.New(), UserID: customerB, FCMToken: "stale"}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: customerA, FCMToken: "good"},
		staleDevice,
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.orderRepo.EXPECT().FindOrdersByBusiness(ctx, business.ID).Return(orders, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil).
		Times(2)
	fx.deviceRepo.EXPECT().
		FindDevicesForUsers(ctx, []uuid.UUID{customerA, customerB}).
		Return(devices, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, "Weekend thali offer", "Flat 20% off", map[string]string{
			"kind":        "promo",
			"business_id": business.ID.String(),
		}).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevice(ctx, staleDevice.ID).Return(nil)

	err := fx.service.BroadcastPromo(ctx, ownerID, business.ID, "Weekend thali offer", "Flat 20% off")

	require.NoError(t, err)
}

func TestNotificationService_BroadcastPromo_NotOwner(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

	err := fx.service.BroadcastPromo(ctx, uuid.New(), business.ID, "Offer", "Body")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestNotificationService_BroadcastPromo_NoCustomers(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.orderRepo.EXPECT().FindOrdersByBusiness(ctx, business.ID).Return([]*entity.Order{}, nil)

	err := fx.service.BroadcastPromo(ctx, ownerID, business.ID, "Offer", "Body")

	require.NoError(t, err)
}
