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
	"gorm.io/gorm/clause"
)

// loyaltyRepository implements the repository.LoyaltyRepository interface.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db: db,
	}
}

// FindAccountByUser retrieves a customer's loyalty account.
func (repo *loyaltyRepository) FindAccountByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account by user")
	}

	return toLoyaltyDomain(&accountM), nil
}

// UpsertAccount creates or updates the account with a new balance and tier.
func (repo *loyaltyRepository) UpsertAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := fromLoyaltyDomain(account)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "tier", "updated_at"}),
		}).
		Create(accountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert loyalty account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toLoyaltyDomain converts a GORM LoyaltyAccountModel to a domain LoyaltyAccount entity.
func toLoyaltyDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		UserID:    data.UserID,
		Points:    data.Points,
		Tier:      entity.LoyaltyTier(data.Tier),
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLoyaltyDomain converts a domain LoyaltyAccount entity to a GORM LoyaltyAccountModel.
func fromLoyaltyDomain(data *entity.LoyaltyAccount) *model.LoyaltyAccountModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyAccountModel{
		UserID:    data.UserID,
		Points:    data.Points,
		Tier:      data.Tier.String(),
		UpdatedAt: data.UpdatedAt,
	}
}
