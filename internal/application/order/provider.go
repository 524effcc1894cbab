package order

import (
	"context"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/google/uuid"
)

// Provider adapts the order repository to the projection billing needs
type Provider struct {
	repo order.Repository
}

// NewProvider creates a billing-facing order provider
func NewProvider(repo order.Repository) *Provider {
	return &Provider{repo: repo}
}

// GetOrder implements billing.OrderProvider
func (p *Provider) GetOrder(ctx context.Context, orderID uuid.UUID) (*billing.OrderInfo, error) {
	o, err := p.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &billing.OrderInfo{
		ID:       o.ID,
		ClientID: o.ClientID,
		Price:    o.Price,
	}, nil
}
