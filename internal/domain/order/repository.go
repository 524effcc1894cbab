package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order storage
type Repository interface {
	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByClient finds all orders placed by a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Order, error)

	// FindAll returns all orders
	FindAll(ctx context.Context) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// Delete removes an order
	Delete(ctx context.Context, id uuid.UUID) error
}
