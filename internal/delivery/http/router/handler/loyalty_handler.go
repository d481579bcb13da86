package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoyaltyHandler holds dependencies for loyalty program handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetAccount retrieves the caller's points balance and tier.
func (h *LoyaltyHandler) GetAccount(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Loyalty account retrieved successfully")
}
