package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromoCodeModel is the GORM-specific struct for the 'promo_codes' table.
// The code string is unique within a business.
type PromoCodeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_promo_business_code"`
	Code           string    `gorm:"not null;uniqueIndex:idx_promo_business_code"`
	Description    string
	DiscountType   string  `gorm:"not null"`
	DiscountValue  float64 `gorm:"type:decimal(10,2);not null"`
	MinOrderAmount float64 `gorm:"type:decimal(10,2);not null;default:0"`
	StartsAt       time.Time
	ExpiresAt      time.Time
	MaxUses        int  `gorm:"not null;default:0"`
	UseCount       int  `gorm:"not null;default:0"`
	IsActive       bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}
