package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Every descriptive column carries a unique constraint; two shops may not
// share a name, logo, phone, address or email.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Logo        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(20);unique;not null"`
	Address     string    `gorm:"type:varchar(100);unique;not null"`
	Email       string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
