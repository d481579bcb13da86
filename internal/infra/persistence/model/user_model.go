// Package model holds the GORM-specific table structs. They are mapped to and
// from domain entities by the repositories and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:UserID"`
	MerchantProfile *MerchantProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel is the GORM-specific struct for the 'customer_profiles' table.
type CustomerProfileModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primary_key"`
	DefaultAddress string
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// MerchantProfileModel is the GORM-specific struct for the 'merchant_profiles' table.
type MerchantProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessLicense string
	PayoutAccount   string
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}
