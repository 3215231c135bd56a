package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. ShopID references shops.id (UUID);
// the constraint is RESTRICT so a shop with products cannot be deleted out
// from under its catalog.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Image       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:varchar(255)"`
	Price       int       `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
