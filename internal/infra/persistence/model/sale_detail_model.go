package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleDetailModel mirrors the 'sale_details' table, one line item per row.
// Both references are RESTRICT; a sale or product with live lines cannot be
// deleted.
type SaleDetailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Quantity  int       `gorm:"not null"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Sale    *SaleModel    `gorm:"foreignKey:SaleID;constraint:OnDelete:RESTRICT"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (SaleDetailModel) TableName() string {
	return "sale_details"
}
