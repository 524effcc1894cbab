package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository is an in-memory implementation of
// billing.InvoiceRepository
type InvoiceRepository struct {
	invoices map[uuid.UUID]billing.Invoice
}

// NewInvoiceRepository creates an empty invoice repository
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: make(map[uuid.UUID]billing.Invoice)}
}

// FindByID finds an invoice by ID
func (r *InvoiceRepository) FindByID(_ context.Context, id uuid.UUID) (*billing.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &inv, nil
}

// FindByOrder finds all invoices created for an order
func (r *InvoiceRepository) FindByOrder(_ context.Context, orderID uuid.UUID) ([]billing.Invoice, error) {
	out := make([]billing.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.OrderID == orderID {
			out = append(out, inv)
		}
	}
	sortByCreation(out, func(inv billing.Invoice) (time.Time, uuid.UUID) { return inv.CreatedAt, inv.ID })
	return out, nil
}

// FindAll returns all invoices ordered by creation time
func (r *InvoiceRepository) FindAll(_ context.Context) ([]billing.Invoice, error) {
	out := make([]billing.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	sortByCreation(out, func(inv billing.Invoice) (time.Time, uuid.UUID) { return inv.CreatedAt, inv.ID })
	return out, nil
}

// Save creates or updates an invoice
func (r *InvoiceRepository) Save(_ context.Context, inv *billing.Invoice) error {
	r.invoices[inv.ID] = *inv
	return nil
}

// Delete removes an invoice. Cascading to payments is the service's job:
// stores are independent and the cascade is deliberately not atomic.
func (r *InvoiceRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.invoices[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

// PaymentRepository is an in-memory implementation of
// billing.PaymentRepository
type PaymentRepository struct {
	payments map[uuid.UUID]billing.Payment
}

// NewPaymentRepository creates an empty payment repository
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[uuid.UUID]billing.Payment)}
}

// FindByID finds a payment by ID
func (r *PaymentRepository) FindByID(_ context.Context, id uuid.UUID) (*billing.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

// FindByInvoice finds all payments applied to an invoice
func (r *PaymentRepository) FindByInvoice(_ context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	out := make([]billing.Payment, 0)
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	sortByCreation(out, func(p billing.Payment) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return out, nil
}

// FindAll returns all payments ordered by creation time
func (r *PaymentRepository) FindAll(_ context.Context) ([]billing.Payment, error) {
	out := make([]billing.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	sortByCreation(out, func(p billing.Payment) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return out, nil
}

// Save creates or updates a payment
func (r *PaymentRepository) Save(_ context.Context, p *billing.Payment) error {
	r.payments[p.ID] = *p
	return nil
}

// Delete removes a payment
func (r *PaymentRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.payments[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.payments, id)
	return nil
}

// DeleteByInvoice removes every payment referencing an invoice and reports
// how many were removed
func (r *PaymentRepository) DeleteByInvoice(_ context.Context, invoiceID uuid.UUID) (int, error) {
	removed := 0
	for id, p := range r.payments {
		if p.InvoiceID == invoiceID {
			delete(r.payments, id)
			removed++
		}
	}
	return removed, nil
}
