// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"emall/internal/domain/entity"
	"emall/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrDuplicateShop is returned when an insert or update violates one of
	// the shop's unique columns (name, logo, phone, address, email).
	ErrDuplicateShop = errors.New("shop unique field already taken")
)

// ShopRepository defines the interface for shop-related database operations.
type ShopRepository interface {
	// Create persists a new shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its unique ID.
	// Returns ErrShopNotFound if no such shop exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByName retrieves a shop by its unique name.
	// Returns ErrShopNotFound if no such shop exists.
	FindByName(ctx context.Context, name string) (*entity.Shop, error)

	// FindAll retrieves every registered shop.
	FindAll(ctx context.Context) ([]*entity.Shop, error)

	// Update updates an existing shop record.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop by its ID.
	// Returns ErrShopNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
