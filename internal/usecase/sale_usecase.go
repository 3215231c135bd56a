package usecase

import (
	"context"
	"time"

	"emall/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleUsecase defines the interface for sale ledger operations.
//
// The status machine is deliberately permissive: any of the four defined
// codes can be set through update, and the mark operations are idempotent.
// Only the validity of the code itself is enforced.
type SaleUsecase interface {
	// CreateSale records a new sale with a caller-supplied status code.
	CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error)

	// GetSale retrieves a sale by ID.
	GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// ListSales retrieves every sale in the ledger.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// UpdateSale applies a partial update; only supplied fields change.
	// Zero is a valid value for total.
	UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error)

	// DeleteSale removes a sale. Rejected while sale details still
	// reference it.
	DeleteSale(ctx context.Context, id uuid.UUID) error

	// MarkSalePaid sets the sale status to paid, unconditionally.
	MarkSalePaid(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// MarkSaleInProgress sets the sale status to in progress, unconditionally.
	MarkSaleInProgress(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
}

// --- Input DTOs ---

// CreateSaleInput defines the data required to record a sale.
// Status is the integer wire code of the sale status.
type CreateSaleInput struct {
	Date   time.Time `json:"date"`
	Total  int       `json:"total"`
	Status int       `json:"status"`
}

// UpdateSaleInput defines the optional fields of a sale update.
// Nil means "leave unchanged".
type UpdateSaleInput struct {
	Date   *time.Time `json:"date,omitempty"`
	Total  *int       `json:"total,omitempty"`
	Status *int       `json:"status,omitempty"`
}
