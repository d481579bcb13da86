package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null;index"`
	Description string
	Type        string `gorm:"not null;index"`
	Category    string `gorm:"index"`
	Phone       string
	Email       string
	Address     string
	Latitude    float64 `gorm:"type:decimal(9,6)"`
	Longitude   float64 `gorm:"type:decimal(9,6)"`
	ImageURL    string
	Rating      float64 `gorm:"type:decimal(3,2);not null;default:0"`
	RatingCount int     `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
