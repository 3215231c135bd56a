// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a transaction with a date, a caller-supplied total and a lifecycle
// status. The total is not derived from line items; a nulled sale carries a
// total of zero by convention.
type Sale struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the sale.
	Date      time.Time  `json:"date"`       // The date of the sale.
	Total     int        `json:"total"`      // Total value in minor currency units.
	Status    SaleStatus `json:"status"`     // Lifecycle status, always one of the four defined codes.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this sale was created.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}
