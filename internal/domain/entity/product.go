// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item owned by exactly one Shop. Price and stock
// quantity are non-negative integers; price is expressed in the currency's
// minor unit, consistent with Sale.Total.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	Name        string    `json:"name"`        // The product name. Not unique across the catalog.
	Image       string    `json:"image"`       // Reference image for the product.
	Description string    `json:"description"` // Optional free-text description.
	Price       int       `json:"price"`       // Unit price in minor currency units.
	Quantity    int       `json:"quantity"`    // Stock on hand.
	ShopID      uuid.UUID `json:"shop_id"`     // The Shop this product belongs to.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this product was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
