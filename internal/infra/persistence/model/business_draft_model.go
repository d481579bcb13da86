package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessDraftModel is the GORM-specific struct for the 'business_drafts'
// table. The owner ID doubles as the primary key so each merchant keeps at
// most one draft.
type BusinessDraftModel struct {
	OwnerID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string
	Description string
	Type        string
	Category    string
	Phone       string
	Email       string
	Address     string
	Latitude    float64 `gorm:"type:decimal(9,6)"`
	Longitude   float64 `gorm:"type:decimal(9,6)"`
	Step        int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessDraftModel) TableName() string {
	return "business_drafts"
}
