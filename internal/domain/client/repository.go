package client

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for client storage
type Repository interface {
	// FindByID finds a client by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindAll returns all clients
	FindAll(ctx context.Context) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete removes a client
	Delete(ctx context.Context, id uuid.UUID) error
}
