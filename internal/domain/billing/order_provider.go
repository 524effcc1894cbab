package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderInfo is the projection of an order that billing needs: enough to price
// an invoice and attribute it to a client. Price is nil when the order has
// not been priced yet.
type OrderInfo struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Price    *decimal.Decimal
}

// OrderProvider exposes order lookups to the billing context without coupling
// it to the order context's repositories.
type OrderProvider interface {
	// GetOrder returns the order projection, or a not-found error
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderInfo, error)
}
