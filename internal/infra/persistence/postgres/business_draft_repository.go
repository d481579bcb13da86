package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessDraftRepository implements the repository.BusinessDraftRepository interface.
type businessDraftRepository struct {
	db *gorm.DB
}

// NewBusinessDraftRepository is the constructor for businessDraftRepository.
func NewBusinessDraftRepository(db *gorm.DB) repository.BusinessDraftRepository {
	return &businessDraftRepository{
		db: db,
	}
}

// UpsertBusinessDraft inserts the draft or replaces the merchant's existing one.
func (repo *businessDraftRepository) UpsertBusinessDraft(ctx context.Context, draft *entity.BusinessDraft) error {
	draftM := fromBusinessDraftDomain(draft)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(draftM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert business draft")
	}

	draft.UpdatedAt = draftM.UpdatedAt

	return nil
}

// FindBusinessDraftByOwner retrieves the merchant's saved draft.
func (repo *businessDraftRepository) FindBusinessDraftByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessDraft, error) {
	var draftM model.BusinessDraftModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&draftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to find business draft by owner")
	}

	return toBusinessDraftDomain(&draftM), nil
}

// DeleteBusinessDraft removes the merchant's saved draft.
func (repo *businessDraftRepository) DeleteBusinessDraft(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.BusinessDraftModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business draft")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessDraftNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDraftDomain converts a GORM BusinessDraftModel to a domain BusinessDraft entity.
func toBusinessDraftDomain(data *model.BusinessDraftModel) *entity.BusinessDraft {
	if data == nil {
		return nil
	}

	return &entity.BusinessDraft{
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Type:        data.Type,
		Category:    data.Category,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Step:        data.Step,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBusinessDraftDomain converts a domain BusinessDraft entity to a GORM BusinessDraftModel.
func fromBusinessDraftDomain(data *entity.BusinessDraft) *model.BusinessDraftModel {
	if data == nil {
		return nil
	}

	return &model.BusinessDraftModel{
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Type:        data.Type,
		Category:    data.Category,
		Phone:       data.Phone,
		Email:       data.Email,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Step:        data.Step,
	}
}
