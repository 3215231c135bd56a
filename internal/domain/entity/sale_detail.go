// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleDetail is a line item: the many-to-many association between a Sale and
// a Product, carrying the sold quantity. The surrogate ID is the primary key;
// (SaleID, ProductID) is the conceptual identity of a line.
type SaleDetail struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the line item.
	Quantity  int       `json:"quantity"`   // Quantity of the product sold, positive.
	SaleID    uuid.UUID `json:"sale_id"`    // The Sale this line belongs to.
	ProductID uuid.UUID `json:"product_id"` // The Product sold on this line.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this line was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.

	// Sale and Product are resolved on list reads for caller convenience.
	Sale    *Sale    `json:"sale,omitempty"`
	Product *Product `json:"product,omitempty"`
}
