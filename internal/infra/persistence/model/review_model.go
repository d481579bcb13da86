package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// One review per customer per business.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_business_customer"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_customer"`
	CustomerName string
	Rating       int `gorm:"not null"`
	Comment      string
	CreatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
