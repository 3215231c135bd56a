package usecase

import (
	"context"

	"emall/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	// CreateProduct adds a product to a shop's catalog. Fails if the shop
	// does not exist.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetProductByName retrieves the first product matching a name.
	GetProductByName(ctx context.Context, name string) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListShopProducts retrieves all products owned by a shop. Fails if the
	// shop does not exist.
	ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct applies a partial update; only supplied fields change.
	// Zero is a valid value for price and quantity.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Rejected while sale details still
	// reference it.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateProductInput defines the data required to add a product.
type CreateProductInput struct {
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Quantity    int       `json:"quantity"`
	ShopID      uuid.UUID `json:"shop_id"`
}

// UpdateProductInput defines the optional fields of a product update.
// Nil means "leave unchanged".
type UpdateProductInput struct {
	Name        *string `json:"name,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
}
