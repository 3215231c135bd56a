package repository

import (
	"context"

	"emall/internal/domain/entity"
	"emall/internal/errors"

	"github.com/google/uuid"
)

// ErrSaleNotFound is returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	// Create persists a new sale.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its unique ID.
	// Returns ErrSaleNotFound if no such sale exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves every sale in the ledger.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// Update updates an existing sale record.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale by its ID.
	// Returns ErrSaleNotFound if no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
