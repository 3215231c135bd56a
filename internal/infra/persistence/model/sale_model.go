package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table. Status is stored as its integer code.
type SaleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Date      time.Time `gorm:"not null;index"`
	Total     int       `gorm:"not null"`
	Status    int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Details []SaleDetailModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}
