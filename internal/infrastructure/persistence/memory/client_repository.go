package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/client"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository is an in-memory implementation of client.Repository
type ClientRepository struct {
	clients map[uuid.UUID]client.Client
}

// NewClientRepository creates an empty client repository
func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[uuid.UUID]client.Client)}
}

// FindByID finds a client by ID
func (r *ClientRepository) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &c, nil
}

// FindAll returns all clients ordered by creation time
func (r *ClientRepository) FindAll(_ context.Context) ([]client.Client, error) {
	out := make([]client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sortByCreation(out, func(c client.Client) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID })
	return out, nil
}

// Save creates or updates a client
func (r *ClientRepository) Save(_ context.Context, c *client.Client) error {
	r.clients[c.ID] = *c
	return nil
}

// Delete removes a client
func (r *ClientRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.clients[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}
