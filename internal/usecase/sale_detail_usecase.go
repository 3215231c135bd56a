package usecase

import (
	"context"

	"emall/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleDetailUsecase defines the interface for sale line-item operations.
type SaleDetailUsecase interface {
	// CreateSaleDetail attaches a product to a sale with a quantity. Both
	// references are validated inside the same transaction as the insert.
	CreateSaleDetail(ctx context.Context, input *CreateSaleDetailInput) (*entity.SaleDetail, error)

	// ListSaleDetails retrieves every line with its sale and product resolved.
	ListSaleDetails(ctx context.Context) ([]*entity.SaleDetail, error)

	// UpdateSaleDetail applies a partial update. Reassigning the sale or the
	// product always re-validates the new reference.
	UpdateSaleDetail(ctx context.Context, id uuid.UUID, input *UpdateSaleDetailInput) (*entity.SaleDetail, error)

	// DeleteSaleDetail removes a line by ID.
	DeleteSaleDetail(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateSaleDetailInput defines the data required to attach a product to a sale.
type CreateSaleDetailInput struct {
	Quantity  int       `json:"quantity"`
	SaleID    uuid.UUID `json:"sale_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// UpdateSaleDetailInput defines the optional fields of a line update.
// Nil means "leave unchanged".
type UpdateSaleDetailInput struct {
	Quantity  *int       `json:"quantity,omitempty"`
	SaleID    *uuid.UUID `json:"sale_id,omitempty"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}
