package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice storage
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByOrder finds all invoices created for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Invoice, error)

	// FindAll returns all invoices
	FindAll(ctx context.Context) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// Delete removes an invoice
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the interface for payment storage
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByInvoice finds all payments applied to an invoice
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)

	// FindAll returns all payments
	FindAll(ctx context.Context) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Delete removes a payment
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByInvoice removes every payment referencing an invoice.
	// Used by the invoice delete cascade.
	DeleteByInvoice(ctx context.Context, invoiceID uuid.UUID) (int, error)
}
