package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccountModel is the GORM-specific struct for the 'loyalty_accounts' table.
type LoyaltyAccountModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Points    int       `gorm:"not null;default:0"`
	Tier      string    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_accounts"
}
