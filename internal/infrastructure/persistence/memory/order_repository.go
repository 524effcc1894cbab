package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/order"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository is an in-memory implementation of order.Repository
type OrderRepository struct {
	orders map[uuid.UUID]order.Order
}

// NewOrderRepository creates an empty order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]order.Order)}
}

// FindByID finds an order by ID
func (r *OrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &o, nil
}

// FindByClient finds all orders placed by a client
func (r *OrderRepository) FindByClient(_ context.Context, clientID uuid.UUID) ([]order.Order, error) {
	out := make([]order.Order, 0)
	for _, o := range r.orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	sortByCreation(out, func(o order.Order) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID })
	return out, nil
}

// FindAll returns all orders ordered by creation time
func (r *OrderRepository) FindAll(_ context.Context) ([]order.Order, error) {
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortByCreation(out, func(o order.Order) (time.Time, uuid.UUID) { return o.CreatedAt, o.ID })
	return out, nil
}

// Save creates or updates an order
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = *o
	return nil
}

// Delete removes an order
func (r *OrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}
