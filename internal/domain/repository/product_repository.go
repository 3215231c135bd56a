package repository

import (
	"context"

	"emall/internal/domain/entity"
	"emall/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product for a shop.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if no such product exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName retrieves the first product matching the given name.
	// Product names are not unique; callers get the oldest match.
	// Returns ErrProductNotFound if no product matches.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindAll retrieves every product in the catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByShop retrieves all products owned by a specific shop.
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)

	// CountByShop returns the number of products owned by a shop.
	// Used for the dependent check before deleting a shop.
	CountByShop(ctx context.Context, shopID uuid.UUID) (int64, error)

	// Update updates an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	// Returns ErrProductNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
