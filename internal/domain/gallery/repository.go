package gallery

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for portfolio item storage
type Repository interface {
	// FindByID finds a portfolio item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PortfolioItem, error)

	// FindByClient finds all items linked to a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]PortfolioItem, error)

	// FindByOrder finds all items linked to an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]PortfolioItem, error)

	// FindByTag finds all items carrying a style tag
	FindByTag(ctx context.Context, tag string) ([]PortfolioItem, error)

	// FindPublic returns all publicly visible items
	FindPublic(ctx context.Context) ([]PortfolioItem, error)

	// FindAll returns all items
	FindAll(ctx context.Context) ([]PortfolioItem, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *PortfolioItem) error

	// Delete removes an item
	Delete(ctx context.Context, id uuid.UUID) error
}
