// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is the core entity for a seller tenant. Every Product belongs to
// exactly one Shop; the name, logo, phone, address and email columns are
// unique across all shops.
type Shop struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the shop.
	Name        string    `json:"name"`        // The display name of the shop, unique.
	Logo        string    `json:"logo"`        // Reference to the shop's logo asset, unique.
	Description string    `json:"description"` // Optional free-text description.
	Phone       string    `json:"phone"`       // Contact phone number, unique.
	Address     string    `json:"address"`     // Street address, unique.
	Email       string    `json:"email"`       // Contact email, unique.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this shop was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
