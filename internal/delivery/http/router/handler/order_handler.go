package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	BusinessID    uuid.UUID          `json:"business_id" validate:"required"`
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address       string             `json:"address" validate:"required"`
	PromoCode     string             `json:"promo_code"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=upi card cod"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func parseOrderListQuery(c echo.Context) *usecase.OrderListQuery {
	query := &usecase.OrderListQuery{
		Status: c.QueryParam("status"),
		Sort:   c.QueryParam("sort"),
	}
	query.Page, _ = strconv.Atoi(c.QueryParam("page"))
	query.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	return query
}

// PlaceOrder handles checkout.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), customerID, &usecase.PlaceOrderInput{
		BusinessID:    req.BusinessID,
		Items:         items,
		Address:       req.Address,
		PromoCode:     req.PromoCode,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder retrieves one order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	requesterID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), requesterID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOwnOrders lists the caller's order history.
func (h *OrderHandler) ListOwnOrders(c echo.Context) error {
	customerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ListCustomerOrders(c.Request().Context(), customerID, parseOrderListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// ListBusinessOrders lists the incoming orders of a merchant's business.
func (h *OrderHandler) ListBusinessOrders(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ListBusinessOrders(c.Request().Context(), ownerID, businessID, parseOrderListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// UpdateOrderStatus moves an order to a new lifecycle status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), ownerID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
