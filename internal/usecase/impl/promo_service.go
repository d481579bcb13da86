package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promoService implements the PromoUsecase interface.
type promoService struct {
	promoRepo    repository.PromoCodeRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// PromoServiceParams holds dependencies for PromoService, injected by Fx.
type PromoServiceParams struct {
	fx.In

	PromoRepo    repository.PromoCodeRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewPromoService creates a new promo service instance
func NewPromoService(params PromoServiceParams) usecase.PromoUsecase {
	return &promoService{
		promoRepo:    params.PromoRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *promoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePromoCode adds a code to a business owned by the caller.
func (srv *promoService) CreatePromoCode(ctx context.Context, ownerID, businessID uuid.UUID, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	if err := srv.checkOwnership(ctx, ownerID, businessID); err != nil {
		return nil, err
	}

	if !input.DiscountType.IsValid() {
		return nil, domainerrors.ErrPromoNotApplicable.WrapMessage("unknown discount type")
	}

	promo := &entity.PromoCode{
		ID:             uuid.New(),
		BusinessID:     businessID,
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		MinOrderAmount: input.MinOrderAmount,
		StartsAt:       input.StartsAt,
		ExpiresAt:      input.ExpiresAt,
		MaxUses:        input.MaxUses,
		IsActive:       input.IsActive,
	}

	if err := srv.promoRepo.CreatePromoCode(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromoCode) {
			return nil, domainerrors.ErrDuplicatePromoCode
		}

		return nil, errors.Wrap(err, "failed to create promo code")
	}

	srv.log(ctx).Info("Promo code created",
		slog.String("promo_id", promo.ID.String()),
		slog.String("business_id", businessID.String()),
		slog.String("code", promo.Code),
	)

	return promo, nil
}

// ListBusinessPromoCodes retrieves all codes of a business owned by the caller.
func (srv *promoService) ListBusinessPromoCodes(ctx context.Context, ownerID, businessID uuid.UUID) ([]*entity.PromoCode, error) {
	if err := srv.checkOwnership(ctx, ownerID, businessID); err != nil {
		return nil, err
	}

	promos, err := srv.promoRepo.FindPromoCodesByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find promo codes by business")
	}

	return promos, nil
}

// UpdatePromoCode edits a code on a business owned by the caller.
func (srv *promoService) UpdatePromoCode(ctx context.Context, ownerID, promoID uuid.UUID, input *usecase.PromoCodeInput) (*entity.PromoCode, error) {
	promo, err := srv.ownedPromo(ctx, ownerID, promoID)
	if err != nil {
		return nil, err
	}

	if !input.DiscountType.IsValid() {
		return nil, domainerrors.ErrPromoNotApplicable.WrapMessage("unknown discount type")
	}

	promo.Code = input.Code
	promo.Description = input.Description
	promo.DiscountType = input.DiscountType
	promo.DiscountValue = input.DiscountValue
	promo.MinOrderAmount = input.MinOrderAmount
	promo.StartsAt = input.StartsAt
	promo.ExpiresAt = input.ExpiresAt
	promo.MaxUses = input.MaxUses
	promo.IsActive = input.IsActive

	if err := srv.promoRepo.UpdatePromoCode(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromoCode) {
			return nil, domainerrors.ErrDuplicatePromoCode
		}

		return nil, errors.Wrap(err, "failed to update promo code")
	}

	return promo, nil
}

// DeletePromoCode removes a code on a business owned by the caller.
func (srv *promoService) DeletePromoCode(ctx context.Context, ownerID, promoID uuid.UUID) error {
	if _, err := srv.ownedPromo(ctx, ownerID, promoID); err != nil {
		return err
	}

	if err := srv.promoRepo.DeletePromoCode(ctx, promoID); err != nil {
		return errors.Wrap(err, "failed to delete promo code")
	}

	return nil
}

// ValidatePromoCode checks a code against a subtotal without redeeming it.
// An invalid code is a verdict, not an error.
func (srv *promoService) ValidatePromoCode(ctx context.Context, businessID uuid.UUID, code string, subtotal float64) (*usecase.PromoValidationOutput, error) {
	promo, err := srv.promoRepo.FindPromoCodeByCode(ctx, businessID, code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return &usecase.PromoValidationOutput{Valid: false, Reason: "code not found"}, nil
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	now := time.Now()
	switch {
	case !promo.IsActive:
		return &usecase.PromoValidationOutput{Valid: false, Reason: "code is inactive"}, nil
	case now.Before(promo.StartsAt):
		return &usecase.PromoValidationOutput{Valid: false, Reason: "code is not active yet"}, nil
	case now.After(promo.ExpiresAt):
		return &usecase.PromoValidationOutput{Valid: false, Reason: "code has expired"}, nil
	case promo.MaxUses > 0 && promo.UseCount >= promo.MaxUses:
		return &usecase.PromoValidationOutput{Valid: false, Reason: "code usage limit reached"}, nil
	case subtotal < promo.MinOrderAmount:
		return &usecase.PromoValidationOutput{Valid: false, Reason: "order subtotal below promo minimum"}, nil
	}

	return &usecase.PromoValidationOutput{
		Valid:    true,
		Discount: roundMoney(promo.DiscountFor(subtotal)),
	}, nil
}

// ownedPromo loads a promo code and checks the caller owns its business.
func (srv *promoService) ownedPromo(ctx context.Context, ownerID, promoID uuid.UUID) (*entity.PromoCode, error) {
	promo, err := srv.promoRepo.FindPromoCodeByID(ctx, promoID)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return nil, domainerrors.ErrPromoNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code by ID")
	}

	if err := srv.checkOwnership(ctx, ownerID, promo.BusinessID); err != nil {
		return nil, err
	}

	return promo, nil
}

func (srv *promoService) checkOwnership(ctx context.Context, ownerID, businessID uuid.UUID) error {
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

	return nil
}
