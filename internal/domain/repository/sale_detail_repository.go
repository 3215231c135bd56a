package repository

import (
	"context"

	"emall/internal/domain/entity"
	"emall/internal/errors"

	"github.com/google/uuid"
)

// ErrSaleDetailNotFound is returned when a sale detail is not found.
var ErrSaleDetailNotFound = errors.New("sale detail not found")

// SaleDetailRepository defines the interface for sale-line database operations.
type SaleDetailRepository interface {
	// Create persists a new sale detail attaching a product to a sale.
	Create(ctx context.Context, detail *entity.SaleDetail) error

	// FindByID retrieves a sale detail by its unique ID.
	// Returns ErrSaleDetailNotFound if no such line exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SaleDetail, error)

	// FindAll retrieves every sale detail with its associated Sale and
	// Product resolved.
	FindAll(ctx context.Context) ([]*entity.SaleDetail, error)

	// CountBySale returns the number of lines referencing a sale.
	// Used for the dependent check before deleting a sale.
	CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error)

	// CountByProduct returns the number of lines referencing a product.
	// Used for the dependent check before deleting a product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// Update updates an existing sale detail record.
	Update(ctx context.Context, detail *entity.SaleDetail) error

	// Delete removes a sale detail by its ID.
	// Returns ErrSaleDetailNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
