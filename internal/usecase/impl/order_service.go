package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/listing"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager        repository.TransactionManager
	orderRepo        repository.OrderRepository
	businessRepo     repository.BusinessRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.PushService
	eventPublisher   service.EventPublisher
	config           *config.Config
	logger           *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	OrderRepo        repository.OrderRepository
	BusinessRepo     repository.BusinessRepository
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.PushService
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:        params.TxManager,
		orderRepo:        params.OrderRepo,
		businessRepo:     params.BusinessRepo,
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushService:      params.PushService,
		eventPublisher:   params.EventPublisher,
		config:           params.Config,
		logger:           params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder checks stock and promo validity, prices the order inside a
// transaction, records the payment and publishes an order event.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}
	if !business.IsActive {
		return nil, domainerrors.ErrBusinessInactive
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()
		promoRepo := repoFactory.NewPromoCodeRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		items, subtotal, err := srv.priceItems(ctx, productRepo, input)
		if err != nil {
			return err
		}

		discount := 0.0
		if input.PromoCode != "" {
			discount, err = srv.redeemPromo(ctx, promoRepo, input.BusinessID, input.PromoCode, subtotal)
			if err != nil {
				return err
			}
		}

		order = &entity.Order{
			ID:         uuid.New(),
			BusinessID: input.BusinessID,
			CustomerID: customerID,
			Items:      items,
			Subtotal:   subtotal,
			Discount:   discount,
			Total:      roundMoney(subtotal - discount),
			PromoCode:  input.PromoCode,
			Status:     entity.OrderStatusPending,
			Address:    input.Address,
			PlacedAt:   time.Now(),
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		payment := &entity.Payment{
			ID:      uuid.New(),
			OrderID: order.ID,
			Amount:  order.Total,
			Method:  input.PaymentMethod,
			Status:  entity.PaymentStatusPending,
		}
		if err := paymentRepo.CreatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("business_id", order.BusinessID.String()),
		slog.Float64("total", order.Total),
	)

	srv.publishOrderEvent(ctx, order)
	srv.notifyUser(ctx, business.OwnerID, "New order received",
		fmt.Sprintf("Order for ₹%.2f at %s", order.Total, business.Name), order.ID)

	return order, nil
}

// priceItems loads each requested product, checks stock and denormalises the
// line items at current catalog prices.
func (srv *orderService) priceItems(ctx context.Context, productRepo repository.ProductRepository, input *usecase.PlaceOrderInput) ([]entity.OrderItem, float64, error) {
	items := make([]entity.OrderItem, 0, len(input.Items))
	subtotal := 0.0

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, 0, domainerrors.ErrEmptyOrder.WrapMessage("item quantity must be positive")
		}

		product, err := productRepo.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, domainerrors.ErrProductNotFound
			}

			return nil, 0, errors.Wrap(err, "failed to find product by ID")
		}
		if product.BusinessID != input.BusinessID {
			return nil, 0, domainerrors.ErrProductNotFound.WrapMessage("product belongs to a different business")
		}
		if !product.InStock {
			return nil, 0, domainerrors.ErrProductOutOfStock.WithDetails(product.Name)
		}

		item := entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		items = append(items, item)
		subtotal += item.Amount()
	}

	return items, roundMoney(subtotal), nil
}

// redeemPromo validates and redeems a code inside the order transaction.
func (srv *orderService) redeemPromo(ctx context.Context, promoRepo repository.PromoCodeRepository, businessID uuid.UUID, code string, subtotal float64) (float64, error) {
	promo, err := promoRepo.FindPromoCodeByCode(ctx, businessID, code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return 0, domainerrors.ErrPromoNotFound
		}

		return 0, errors.Wrap(err, "failed to find promo code")
	}

	if !promo.ValidAt(time.Now()) {
		return 0, domainerrors.ErrPromoNotApplicable
	}
	if subtotal < promo.MinOrderAmount {
		return 0, domainerrors.ErrPromoNotApplicable.WrapMessage("order subtotal below promo minimum")
	}

	if err := promoRepo.IncrementUseCount(ctx, promo.ID); err != nil {
		return 0, errors.Wrap(err, "failed to increment promo use count")
	}

	return roundMoney(promo.DiscountFor(subtotal)), nil
}

// GetOrder retrieves an order visible to the requester.
func (srv *orderService) GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	if order.CustomerID == requesterID {
		return order, nil
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, order.BusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by ID")
	}
	if business.OwnerID != requesterID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListCustomerOrders applies the query criteria to the caller's orders.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, query *usecase.OrderListQuery) (*usecase.OrderListOutput, error) {
	orders, err := srv.orderRepo.FindOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return srv.filterOrders(orders, query), nil
}

// ListBusinessOrders applies the query criteria to a business's orders.
func (srv *orderService) ListBusinessOrders(ctx context.Context, ownerID, businessID uuid.UUID, query *usecase.OrderListQuery) (*usecase.OrderListOutput, error) {
	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}
	if business.OwnerID != ownerID {
		return nil, domainerrors.ErrNotBusinessOwner
	}

	orders, err := srv.orderRepo.FindOrdersByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by business")
	}

	return srv.filterOrders(orders, query), nil
}

func (srv *orderService) filterOrders(orders []*entity.Order, query *usecase.OrderListQuery) *usecase.OrderListOutput {
	criteria := listing.Criteria[*entity.Order]{
		Filters: []listing.Filter[*entity.Order]{
			listing.Match[*entity.Order]{
				Value: query.Status,
				Key:   func(o *entity.Order) string { return o.Status.String() },
			},
		},
	}

	switch query.Sort {
	case "amount-high":
		criteria.Sort = listing.ByNumber(func(o *entity.Order) (float64, bool) { return o.Total, true }, true)
	case "amount-low":
		criteria.Sort = listing.ByNumber(func(o *entity.Order) (float64, bool) { return o.Total, true }, false)
	case "newest", "":
		criteria.Sort = listing.ByTime(func(o *entity.Order) time.Time { return o.PlacedAt }, true)
	}

	matched := listing.Apply(orders, criteria)
	page, pageSize := pageBoundsWithConfig(srv.config, query.Page, query.PageSize)

	return &usecase.OrderListOutput{
		Items:    listing.Page(matched, page, pageSize),
		Total:    len(matched),
		Page:     page,
		PageSize: pageSize,
	}
}

// UpdateOrderStatus moves an order to a new status. Delivered orders accrue
// loyalty points; every change notifies the customer.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, ownerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, order.BusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by ID")
	}
	if business.OwnerID != ownerID {
		return nil, domainerrors.ErrNotBusinessOwner
	}

	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("order already settled")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		loyaltyRepo := repoFactory.NewLoyaltyRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		if err := orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if status == entity.OrderStatusDelivered {
			if err := srv.accrueLoyalty(ctx, loyaltyRepo, order); err != nil {
				return err
			}
			if err := srv.capturePayment(ctx, paymentRepo, order.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", status.String()),
	)

	srv.publishOrderEvent(ctx, order)
	srv.notifyUser(ctx, order.CustomerID, "Order update",
		fmt.Sprintf("Your order from %s is now %s", business.Name, status), order.ID)

	return order, nil
}

// accrueLoyalty grants points for a delivered order and rebalances the tier.
func (srv *orderService) accrueLoyalty(ctx context.Context, loyaltyRepo repository.LoyaltyRepository, order *entity.Order) error {
	earned := int(math.Floor(order.Total * constants.LoyaltyPointsPerRupee))
	if earned <= 0 {
		return nil
	}

	account, err := loyaltyRepo.FindAccountByUser(ctx, order.CustomerID)
	if errors.Is(err, repository.ErrLoyaltyNotFound) {
		account = &entity.LoyaltyAccount{
			UserID: order.CustomerID,
			Tier:   entity.LoyaltyTierBronze,
		}
	} else if err != nil {
		return errors.Wrap(err, "failed to find loyalty account")
	}

	account.Points += earned
	account.Tier = entity.TierForPoints(account.Points)
	account.UpdatedAt = time.Now()

	if err := loyaltyRepo.UpsertAccount(ctx, account); err != nil {
		return errors.Wrap(err, "failed to upsert loyalty account")
	}

	return nil
}

// capturePayment marks the payment captured on delivery. Cash-on-delivery
// settles at the door, gateway methods are assumed confirmed by then.
func (srv *orderService) capturePayment(ctx context.Context, paymentRepo repository.PaymentRepository, orderID uuid.UUID) error {
	payment, err := paymentRepo.FindPaymentByOrder(ctx, orderID)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find payment by order")
	}

	if err := paymentRepo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCaptured, payment.Reference); err != nil {
		return errors.Wrap(err, "failed to capture payment")
	}

	return nil
}

// publishOrderEvent emits an event for downstream consumers. Failures are
// logged, never surfaced; the order itself already committed.
func (srv *orderService) publishOrderEvent(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID.String(),
		BusinessID: order.BusinessID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     order.Status.String(),
		Total:      order.Total,
		PromoCode:  order.PromoCode,
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// notifyUser stores an in-app notification and pushes it to the user's
// active devices. Best effort, failures are logged only.
func (srv *orderService) notifyUser(ctx context.Context, userID uuid.UUID, title, body string, orderID uuid.UUID) {
	notification := &entity.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Kind:    constants.NotificationKindOrder,
		Title:   title,
		Body:    body,
		OrderID: &orderID,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to store notification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for push",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	tokenDevice := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		tokenDevice[device.FCMToken] = device.ID
	}

	data := map[string]string{
		"kind":     constants.NotificationKindOrder,
		"order_id": orderID.String(),
	}
	successCount, failureCount, invalidTokens, err := srv.pushService.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		srv.log(ctx).Error("Failed to send push notification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	srv.log(ctx).Info("Push notification sent",
		slog.String("user_id", userID.String()),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
	)

	// Deactivate devices whose tokens went stale.
	for _, token := range invalidTokens {
		if deviceID, ok := tokenDevice[token]; ok {
			if err := srv.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
				srv.log(ctx).Warn("Failed to deactivate stale device",
					slog.String("device_id", deviceID.String()),
				)
			}
		}
	}
}

// roundMoney keeps monetary values at two decimal places.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
