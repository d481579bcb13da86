package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	orderRepo        repository.OrderRepository
	businessRepo     repository.BusinessRepository
	pushService      service.PushService
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	OrderRepo        repository.OrderRepository
	BusinessRepo     repository.BusinessRepository
	PushService      service.PushService
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		orderRepo:        params.OrderRepo,
		businessRepo:     params.BusinessRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications retrieves the caller's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return notifications, nil
}

// MarkRead flags one notification as read.
func (srv *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := srv.notificationRepo.MarkNotificationRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags all of the caller's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// RegisterDevice registers or refreshes a push device for the caller. A known
// device ID gets its token refreshed instead of a second registration.
func (srv *notificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) error {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return errors.Wrap(err, "failed to refresh FCM token")
			}

			srv.log(ctx).Info("Device token refreshed",
				slog.String("user_id", userID.String()),
				slog.String("device_id", info.DeviceID),
			)

			return nil
		}
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: info.FCMToken,
		DeviceID: info.DeviceID,
		Platform: info.Platform,
		IsActive: true,
	}
	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Info("Device registered",
		slog.String("user_id", userID.String()),
		slog.String("device_id", info.DeviceID),
		slog.String("platform", info.Platform),
	)

	return nil
}

// BroadcastPromo pushes a promotional message to every customer who ordered
// from the business before and stores it in their inbox.
func (srv *notificationService) BroadcastPromo(ctx context.Context, ownerID, businessID uuid.UUID, title, body string) error {
	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business by ID")
	}
	if business.OwnerID != ownerID {
		return domainerrors.ErrNotBusinessOwner
	}

	orders, err := srv.orderRepo.FindOrdersByBusiness(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to find orders by business")
	}

	seen := make(map[uuid.UUID]struct{}, len(orders))
	customerIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.CustomerID]; ok {
			continue
		}
		seen[order.CustomerID] = struct{}{}
		customerIDs = append(customerIDs, order.CustomerID)
	}

	if len(customerIDs) == 0 {
		return nil
	}

	for _, customerID := range customerIDs {
		notification := &entity.Notification{
			ID:        uuid.New(),
			UserID:    customerID,
			Kind:      constants.NotificationKindPromo,
			Title:     title,
			Body:      body,
			CreatedAt: time.Now(),
		}
		if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
			srv.log(ctx).Error("Failed to store promo notification",
				slog.String("user_id", customerID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	devices, err := srv.deviceRepo.FindDevicesForUsers(ctx, customerIDs)
	if err != nil {
		return errors.Wrap(err, "failed to find devices for users")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	tokenDevice := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		tokenDevice[device.FCMToken] = device.ID
	}

	data := map[string]string{
		"kind":        constants.NotificationKindPromo,
		"business_id": businessID.String(),
	}
	successCount, failureCount, invalidTokens, err := srv.pushService.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return errors.Wrap(err, "failed to send broadcast push")
	}

	srv.log(ctx).Info("Promo broadcast sent",
		slog.String("business_id", businessID.String()),
		slog.Int("recipients", len(customerIDs)),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)

	for _, token := range invalidTokens {
		if deviceID, ok := tokenDevice[token]; ok {
			if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
				srv.log(ctx).Warn("Failed to deactivate stale device",
					slog.String("device_id", deviceID.String()),
				)
			}
		}
	}

	return nil
}
