// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today, possibly gRPC later).
// Implementations block in Serve until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
