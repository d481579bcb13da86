package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromoHandler holds dependencies for promo code handlers.
type PromoHandler struct {
	uc     usecase.PromoUsecase
	logger *slog.Logger
}

// NewPromoHandler is the constructor for PromoHandler, injected by Fx.
func NewPromoHandler(uc usecase.PromoUsecase, logger *slog.Logger) *PromoHandler {
	return &PromoHandler{
		uc:     uc,
		logger: logger,
	}
}

type promoCodeRequest struct {
	Code           string    `json:"code" validate:"required"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discount_type" validate:"required,oneof=flat percent"`
	DiscountValue  float64   `json:"discount_value" validate:"required,gt=0"`
	MinOrderAmount float64   `json:"min_order_amount" validate:"gte=0"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	ExpiresAt      time.Time `json:"expires_at" validate:"required,gtfield=StartsAt"`
	MaxUses        int       `json:"max_uses" validate:"gte=0"`
	IsActive       bool      `json:"is_active"`
}

type validatePromoRequest struct {
	Code     string  `json:"code" validate:"required"`
	Subtotal float64 `json:"subtotal" validate:"required,gt=0"`
}

func (r *promoCodeRequest) toInput() *usecase.PromoCodeInput {
	return &usecase.PromoCodeInput{
		Code:           r.Code,
		Description:    r.Description,
		DiscountType:   entity.DiscountType(r.DiscountType),
		DiscountValue:  r.DiscountValue,
		MinOrderAmount: r.MinOrderAmount,
		StartsAt:       r.StartsAt,
		ExpiresAt:      r.ExpiresAt,
		MaxUses:        r.MaxUses,
		IsActive:       r.IsActive,
	}
}

// CreatePromoCode adds a code to a merchant's business.
func (h *PromoHandler) CreatePromoCode(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req promoCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promo, err := h.uc.CreatePromoCode(c.Request().Context(), ownerID, businessID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promo, "Promo code created successfully")
}

// ListBusinessPromoCodes lists all codes of a merchant's business.
func (h *PromoHandler) ListBusinessPromoCodes(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	promos, err := h.uc.ListBusinessPromoCodes(c.Request().Context(), ownerID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promos, "Promo codes retrieved successfully")
}

// UpdatePromoCode edits a code on a merchant's business.
func (h *PromoHandler) UpdatePromoCode(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	promoID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req promoCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promo, err := h.uc.UpdatePromoCode(c.Request().Context(), ownerID, promoID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promo, "Promo code updated successfully")
}

// DeletePromoCode removes a code from a merchant's business.
func (h *PromoHandler) DeletePromoCode(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	promoID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePromoCode(c.Request().Context(), ownerID, promoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promo code deleted successfully")
}

// ValidatePromoCode checks a code against a cart subtotal at checkout time.
func (h *PromoHandler) ValidatePromoCode(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req validatePromoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo validation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	verdict, err := h.uc.ValidatePromoCode(c.Request().Context(), businessID, req.Code, req.Subtotal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, verdict, "Promo code checked")
}
