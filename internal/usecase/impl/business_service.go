package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/listing"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo  repository.BusinessRepository
	draftRepo     repository.BusinessDraftRepository
	qrcodeService service.QRCodeService
	mediaStorage  service.MediaStorage
	config        *config.Config
	logger        *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo  repository.BusinessRepository
	DraftRepo     repository.BusinessDraftRepository
	QRCodeService service.QRCodeService
	MediaStorage  service.MediaStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo:  params.BusinessRepo,
		draftRepo:     params.DraftRepo,
		qrcodeService: params.QRCodeService,
		mediaStorage:  params.MediaStorage,
		config:        params.Config,
		logger:        params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness registers a new storefront for a merchant.
func (srv *businessService) CreateBusiness(ctx context.Context, ownerID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage("unknown business type")
	}

	business := &entity.Business{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Category:    input.Category,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsActive:    true,
	}

	if err := srv.businessRepo.CreateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created",
		slog.String("business_id", business.ID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	// The registration draft, if any, served its purpose. Best effort.
	if err := srv.draftRepo.DeleteBusinessDraft(ctx, ownerID); err != nil &&
		!errors.Is(err, repository.ErrBusinessDraftNotFound) {
		srv.log(ctx).Warn("Failed to discard business draft after creation",
			slog.String("owner_id", ownerID.String()),
			slog.Any("error", err),
		)
	}

	return business, nil
}

// SaveBusinessDraft merges one form step into the merchant's registration
// draft. Absent fields keep their saved value.
func (srv *businessService) SaveBusinessDraft(ctx context.Context, ownerID uuid.UUID, input *usecase.BusinessDraftInput) (*entity.BusinessDraft, error) {
	draft, err := srv.draftRepo.FindBusinessDraftByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrBusinessDraftNotFound) {
			return nil, errors.Wrap(err, "failed to find business draft")
		}
		draft = &entity.BusinessDraft{OwnerID: ownerID}
	}

	applyDraftInput(draft, input)

	if err := srv.draftRepo.UpsertBusinessDraft(ctx, draft); err != nil {
		return nil, errors.Wrap(err, "failed to save business draft")
	}

	return draft, nil
}

func applyDraftInput(draft *entity.BusinessDraft, input *usecase.BusinessDraftInput) {
	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.Description != nil {
		draft.Description = *input.Description
	}
	if input.Type != nil {
		draft.Type = *input.Type
	}
	if input.Category != nil {
		draft.Category = *input.Category
	}
	if input.Phone != nil {
		draft.Phone = *input.Phone
	}
	if input.Email != nil {
		draft.Email = *input.Email
	}
	if input.Address != nil {
		draft.Address = *input.Address
	}
	if input.Latitude != nil {
		draft.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		draft.Longitude = *input.Longitude
	}
	if input.Step != nil && *input.Step > draft.Step {
		draft.Step = *input.Step
	}
}

// GetBusinessDraft retrieves the merchant's saved registration draft.
func (srv *businessService) GetBusinessDraft(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessDraft, error) {
	draft, err := srv.draftRepo.FindBusinessDraftByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessDraftNotFound) {
			return nil, domainerrors.ErrBusinessDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to find business draft")
	}

	return draft, nil
}

// DiscardBusinessDraft removes the merchant's saved registration draft.
func (srv *businessService) DiscardBusinessDraft(ctx context.Context, ownerID uuid.UUID) error {
	if err := srv.draftRepo.DeleteBusinessDraft(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrBusinessDraftNotFound) {
			return domainerrors.ErrBusinessDraftNotFound
		}

		return errors.Wrap(err, "failed to delete business draft")
	}

	return nil
}

// GetBusiness retrieves one business by ID.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return business, nil
}

// ListBusinesses applies the query criteria to the full catalog in memory.
func (srv *businessService) ListBusinesses(ctx context.Context, query *usecase.BusinessListQuery) (*usecase.BusinessListOutput, error) {
	businesses, err := srv.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	criteria := buildBusinessCriteria(query)
	matched := listing.Apply(businesses, criteria)

	page, pageSize := srv.pageBounds(query.Page, query.PageSize)

	return &usecase.BusinessListOutput{
		Items:    listing.Page(matched, page, pageSize),
		Total:    len(matched),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// buildBusinessCriteria translates the query into listing descriptors.
func buildBusinessCriteria(query *usecase.BusinessListQuery) listing.Criteria[*entity.Business] {
	criteria := listing.Criteria[*entity.Business]{
		Filters: []listing.Filter[*entity.Business]{
			listing.Match[*entity.Business]{
				Value: query.Type,
				Key:   func(b *entity.Business) string { return b.Type.String() },
			},
			listing.Match[*entity.Business]{
				Value: query.Category,
				Key:   func(b *entity.Business) string { return b.Category },
			},
			listing.Flag[*entity.Business]{
				State: query.Active,
				Key:   func(b *entity.Business) bool { return b.IsActive },
			},
		},
		Search: &listing.Search[*entity.Business]{
			Term: query.Search,
			Fields: []func(*entity.Business) string{
				func(b *entity.Business) string { return b.Name },
				func(b *entity.Business) string { return b.Description },
				func(b *entity.Business) string { return b.Category },
			},
		},
	}

	if query.MinRating != nil {
		criteria.Filters = append(criteria.Filters, listing.Threshold[*entity.Business]{
			Min: query.MinRating,
			Key: func(b *entity.Business) (float64, bool) {
				// Unreviewed businesses are excluded from rating thresholds.
				if b.RatingCount == 0 {
					return 0, false
				}

				return b.Rating, true
			},
		})
	}

	switch query.Sort {
	case "rating":
		criteria.Sort = listing.ByNumber(func(b *entity.Business) (float64, bool) {
			if b.RatingCount == 0 {
				return 0, false
			}

			return b.Rating, true
		}, true)
	case "name":
		criteria.Sort = listing.ByString(func(b *entity.Business) string { return b.Name }, false)
	case "nearest":
		if query.Latitude != nil && query.Longitude != nil {
			origin := orb.Point{*query.Longitude, *query.Latitude}
			criteria.Sort = listing.ByNumber(func(b *entity.Business) (float64, bool) {
				if b.Latitude == 0 && b.Longitude == 0 {
					return 0, false
				}

				// Missing keys sort lowest, so negate to push unlocated
				// storefronts to the end of a nearest-first list.
				return -geo.Distance(origin, orb.Point{b.Longitude, b.Latitude}), true
			}, true)
		}
	case "newest", "":
		criteria.Sort = listing.ByTime(func(b *entity.Business) time.Time { return b.CreatedAt }, true)
	}

	return criteria
}

// GetOwnerBusinesses retrieves all businesses of one merchant.
func (srv *businessService) GetOwnerBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.FindBusinessesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner")
	}

	return businesses, nil
}

// UpdateBusiness edits a business owned by the caller.
func (srv *businessService) UpdateBusiness(ctx context.Context, ownerID, businessID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	business, err := srv.ownedBusiness(ctx, ownerID, businessID)
	if err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage("unknown business type")
	}

	business.Name = input.Name
	business.Description = input.Description
	business.Type = input.Type
	business.Category = input.Category
	business.Phone = input.Phone
	business.Email = input.Email
	business.Address = input.Address
	business.Latitude = input.Latitude
	business.Longitude = input.Longitude

	if err := srv.businessRepo.UpdateBusiness(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// SetBusinessStatus toggles whether the business accepts orders.
func (srv *businessService) SetBusinessStatus(ctx context.Context, ownerID, businessID uuid.UUID, isActive bool) error {
	if _, err := srv.ownedBusiness(ctx, ownerID, businessID); err != nil {
		return err
	}

	if err := srv.businessRepo.UpdateBusinessStatus(ctx, businessID, isActive); err != nil {
		return errors.Wrap(err, "failed to update business status")
	}

	srv.log(ctx).Info("Business status updated",
		slog.String("business_id", businessID.String()),
		slog.Bool("is_active", isActive),
	)

	return nil
}

// DeleteBusiness removes a business owned by the caller.
func (srv *businessService) DeleteBusiness(ctx context.Context, ownerID, businessID uuid.UUID) error {
	if _, err := srv.ownedBusiness(ctx, ownerID, businessID); err != nil {
		return err
	}

	if err := srv.businessRepo.DeleteBusiness(ctx, businessID); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	return nil
}

// GenerateStorefrontQR returns a PNG QR code pointing at the storefront.
func (srv *businessService) GenerateStorefrontQR(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	qrCode, err := srv.qrcodeService.GenerateStorefrontQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR")
	}

	return qrCode, nil
}

// UploadBusinessImage stores a cover image and sets it on the business.
func (srv *businessService) UploadBusinessImage(ctx context.Context, ownerID, businessID uuid.UUID, upload *usecase.MediaUpload) (string, error) {
	business, err := srv.ownedBusiness(ctx, ownerID, businessID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("businesses/%s/cover%s", businessID, path.Ext(upload.Filename))
	url, err := srv.mediaStorage.Save(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store business image")
	}

	business.ImageURL = url
	if err := srv.businessRepo.UpdateBusiness(ctx, business); err != nil {
		return "", errors.Wrap(err, "failed to update business image URL")
	}

	return url, nil
}

// ownedBusiness loads a business and checks the caller owns it.
func (srv *businessService) ownedBusiness(ctx context.Context, ownerID, businessID uuid.UUID) (*entity.Business, error) {
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

	return business, nil
}

// pageBounds clamps pagination to the configured limits.
func (srv *businessService) pageBounds(page, pageSize int) (int, int) {
	return pageBoundsWithConfig(srv.config, page, pageSize)
}

func pageBoundsWithConfig(cfg *config.Config, page, pageSize int) (int, int) {
	defaultSize, maxSize := 20, 100
	if cfg != nil && cfg.Listing != nil {
		if cfg.Listing.DefaultPageSize > 0 {
			defaultSize = cfg.Listing.DefaultPageSize
		}
		if cfg.Listing.MaxPageSize > 0 {
			maxSize = cfg.Listing.MaxPageSize
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return page, pageSize
}
