// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"emall/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopUsecase defines the interface for shop registry operations.
type ShopUsecase interface {
	// CreateShop registers a new shop. Fails if any of the unique columns
	// is already taken.
	CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error)

	// GetShop retrieves a shop by ID.
	GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// ListShops retrieves all registered shops.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// RenameShop changes the name of an existing shop.
	RenameShop(ctx context.Context, id uuid.UUID, newName string) (*entity.Shop, error)

	// DeleteShop removes a shop. Rejected while the shop still owns products.
	DeleteShop(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateShopInput defines the data required to register a shop.
type CreateShopInput struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}
