package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/listing"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for storefront handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

type businessRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" validate:"required,oneof=restaurant tiffin grocery"`
	Category    string  `json:"category"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type businessStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// businessDraftRequest accepts any subset of the registration form. Absent
// fields keep their previously saved value.
type businessDraftRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Type        *string  `json:"type" validate:"omitempty,oneof=restaurant tiffin grocery"`
	Category    *string  `json:"category"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Step        *int     `json:"step" validate:"omitempty,min=1"`
}

func (r *businessDraftRequest) toInput() *usecase.BusinessDraftInput {
	return &usecase.BusinessDraftInput{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Category:    r.Category,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Step:        r.Step,
	}
}

func (r *businessRequest) toInput() *usecase.BusinessInput {
	return &usecase.BusinessInput{
		Name:        r.Name,
		Description: r.Description,
		Type:        entity.BusinessType(r.Type),
		Category:    r.Category,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

// parseBusinessListQuery maps query parameters onto the listing criteria.
func parseBusinessListQuery(c echo.Context) *usecase.BusinessListQuery {
	query := &usecase.BusinessListQuery{
		Search:   c.QueryParam("search"),
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
		Active:   listing.ParseTriState(c.QueryParam("active")),
		Sort:     c.QueryParam("sort"),
	}

	if v, err := strconv.ParseFloat(c.QueryParam("min_rating"), 64); err == nil {
		query.MinRating = listing.Float(v)
	}
	if v, err := strconv.ParseFloat(c.QueryParam("lat"), 64); err == nil {
		query.Latitude = listing.Float(v)
	}
	if v, err := strconv.ParseFloat(c.QueryParam("lng"), 64); err == nil {
		query.Longitude = listing.Float(v)
	}
	query.Page, _ = strconv.Atoi(c.QueryParam("page"))
	query.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	return query
}

// ListBusinesses handles the public catalog listing with filters.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	output, err := h.uc.ListBusinesses(c.Request().Context(), parseBusinessListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Businesses retrieved successfully")
}

// GetBusiness handles a single storefront lookup.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// GetStorefrontQR returns the storefront QR code as a PNG image.
func (h *BusinessHandler) GetStorefrontQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateStorefrontQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateBusiness handles merchant storefront creation.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// SaveBusinessDraft merges one registration form step into the caller's draft.
func (h *BusinessHandler) SaveBusinessDraft(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req businessDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business draft input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := h.uc.SaveBusinessDraft(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "Business draft saved successfully")
}

// GetBusinessDraft returns the caller's saved registration draft.
func (h *BusinessHandler) GetBusinessDraft(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	draft, err := h.uc.GetBusinessDraft(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "Business draft retrieved successfully")
}

// DiscardBusinessDraft removes the caller's saved registration draft.
func (h *BusinessHandler) DiscardBusinessDraft(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.DiscardBusinessDraft(c.Request().Context(), ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business draft discarded successfully")
}

// GetOwnBusinesses lists the storefronts of the calling merchant.
func (h *BusinessHandler) GetOwnBusinesses(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businesses, err := h.uc.GetOwnerBusinesses(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}

// UpdateBusiness handles merchant storefront edits.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	business, err := h.uc.UpdateBusiness(c.Request().Context(), ownerID, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// SetBusinessStatus toggles whether the storefront accepts orders.
func (h *BusinessHandler) SetBusinessStatus(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req businessStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetBusinessStatus(c.Request().Context(), ownerID, id, *req.IsActive); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_active": *req.IsActive}, "Business status updated successfully")
}

// DeleteBusiness removes a merchant storefront.
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), ownerID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// UploadBusinessImage stores the storefront cover image.
func (h *BusinessHandler) UploadBusinessImage(c echo.Context) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "An 'image' file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	url, err := h.uc.UploadBusinessImage(c.Request().Context(), ownerID, id, &usecase.MediaUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image_url": url}, "Image uploaded successfully")
}
