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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// CreateBusiness persists a new business.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Backfill generated values onto the entity.
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindBusinessByID retrieves a business by its unique ID.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBusinessesByOwner retrieves all businesses owned by a merchant.
func (repo *businessRepository) FindBusinessesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// ListBusinesses retrieves the full catalog, newest first. Filtering and
// sorting happen in memory through the listing pipeline.
func (repo *businessRepository) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// UpdateBusiness persists changes to an existing business.
func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.Business) error {
	updates := map[string]any{
		"name":        business.Name,
		"description": business.Description,
		"type":        business.Type.String(),
		"category":    business.Category,
		"phone":       business.Phone,
		"email":       business.Email,
		"address":     business.Address,
		"latitude":    business.Latitude,
		"longitude":   business.Longitude,
		"image_url":   business.ImageURL,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateBusinessStatus toggles the accepting-orders flag.
func (repo *businessRepository) UpdateBusinessStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateBusinessRating stores a recomputed review average.
func (repo *businessRepository) UpdateBusinessRating(ctx context.Context, id uuid.UUID, rating float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       rating,
			"rating_count": count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// DeleteBusiness removes a business by its ID (soft delete).
func (repo *businessRepository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Type:        entity.BusinessType(data.Type),
		Category:    data.Category,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ImageURL:    data.ImageURL,
		Rating:      data.Rating,
		RatingCount: data.RatingCount,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Type:        data.Type.String(),
		Category:    data.Category,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ImageURL:    data.ImageURL,
		Rating:      data.Rating,
		RatingCount: data.RatingCount,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
