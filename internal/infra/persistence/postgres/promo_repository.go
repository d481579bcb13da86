package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promoCodeRepository implements the repository.PromoCodeRepository interface.
type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{
		db: db,
	}
}

// CreatePromoCode persists a new promo code.
func (repo *promoCodeRepository) CreatePromoCode(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo code")
	}

	// Backfill generated values onto the entity.
	promo.ID = promoM.ID
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

// FindPromoCodeByID retrieves a promo code by its unique ID.
func (repo *promoCodeRepository) FindPromoCodeByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code by ID")
	}

	return toPromoCodeDomain(&promoM), nil
}

// FindPromoCodeByCode retrieves a promo code by business and code string.
func (repo *promoCodeRepository) FindPromoCodeByCode(ctx context.Context, businessID uuid.UUID, code string) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND code = ?", businessID, code).
		First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code by code")
	}

	return toPromoCodeDomain(&promoM), nil
}

// FindPromoCodesByBusiness retrieves all codes of a business, newest first.
func (repo *promoCodeRepository) FindPromoCodesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.PromoCode, error) {
	var promoModels []*model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find promo codes by business")
	}

	promos := make([]*entity.PromoCode, 0, len(promoModels))
	for _, promoM := range promoModels {
		promos = append(promos, toPromoCodeDomain(promoM))
	}

	return promos, nil
}

// UpdatePromoCode persists changes to an existing promo code.
func (repo *promoCodeRepository) UpdatePromoCode(ctx context.Context, promo *entity.PromoCode) error {
	updates := map[string]any{
		"description":      promo.Description,
		"discount_type":    promo.DiscountType.String(),
		"discount_value":   promo.DiscountValue,
		"min_order_amount": promo.MinOrderAmount,
		"starts_at":        promo.StartsAt,
		"expires_at":       promo.ExpiresAt,
		"max_uses":         promo.MaxUses,
		"is_active":        promo.IsActive,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", promo.ID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update promo code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

// IncrementUseCount records one redemption of the code.
func (repo *promoCodeRepository) IncrementUseCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", id).
		Update("use_count", gorm.Expr("use_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment promo code use count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

// DeletePromoCode removes a promo code by its ID (soft delete).
func (repo *promoCodeRepository) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromoCodeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promo code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPromoCodeDomain converts a GORM PromoCodeModel to a domain PromoCode entity.
func toPromoCodeDomain(data *model.PromoCodeModel) *entity.PromoCode {
	if data == nil {
		return nil
	}

	return &entity.PromoCode{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   entity.DiscountType(data.DiscountType),
		DiscountValue:  data.DiscountValue,
		MinOrderAmount: data.MinOrderAmount,
		StartsAt:       data.StartsAt,
		ExpiresAt:      data.ExpiresAt,
		MaxUses:        data.MaxUses,
		UseCount:       data.UseCount,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPromoCodeDomain converts a domain PromoCode entity to a GORM PromoCodeModel.
func fromPromoCodeDomain(data *entity.PromoCode) *model.PromoCodeModel {
	if data == nil {
		return nil
	}

	return &model.PromoCodeModel{
		ID:             data.ID,
		BusinessID:     data.BusinessID,
		Code:           data.Code,
		Description:    data.Description,
		DiscountType:   data.DiscountType.String(),
		DiscountValue:  data.DiscountValue,
		MinOrderAmount: data.MinOrderAmount,
		StartsAt:       data.StartsAt,
		ExpiresAt:      data.ExpiresAt,
		MaxUses:        data.MaxUses,
		UseCount:       data.UseCount,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
