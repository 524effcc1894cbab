package billing

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	orders      billing.OrderProvider
	reconciler  *Reconciler
	logger      *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	orders billing.OrderProvider,
	reconciler *Reconciler,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		orders:      orders,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// CreateForOrder creates a draft invoice for an order, priced at the order's
// quoted price. An unpriced order cannot be invoiced.
func (s *InvoiceService) CreateForOrder(ctx context.Context, orderID uuid.UUID, dueDate time.Time, notes string) (*billing.Invoice, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Price == nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Order has no price set; cannot create invoice")
	}

	invoice, err := billing.NewInvoice(orderID, dueDate, *order.Price, notes)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("order_id", orderID.String()),
		zap.String("total_amount", invoice.TotalAmount.String()),
	)
	return invoice, nil
}

// GetByID returns a single invoice
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}

// ListAll returns all invoices
func (s *InvoiceService) ListAll(ctx context.Context) ([]billing.Invoice, error) {
	return s.invoiceRepo.FindAll(ctx)
}

// ListForOrder returns all invoices created for an order
func (s *InvoiceService) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]billing.Invoice, error) {
	return s.invoiceRepo.FindByOrder(ctx, orderID)
}

// UpdateStatus sets the invoice status directly. This is the manual override
// path (issuing, cancelling); the next payment mutation may recompute it.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status billing.InvoiceStatus) (*billing.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateDetails updates the mutable invoice fields. Nil parameters leave the
// corresponding field untouched.
func (s *InvoiceService) UpdateDetails(ctx context.Context, id uuid.UUID, dueDate *time.Time, notes *string) (*billing.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dueDate != nil {
		if err := invoice.SetDueDate(*dueDate); err != nil {
			return nil, err
		}
	}
	if notes != nil {
		invoice.SetNotes(*notes)
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete removes an invoice and every payment recorded against it
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.paymentRepo.DeleteByInvoice(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Invoice deleted",
		zap.String("invoice_id", id.String()),
		zap.Int("payments_removed", removed),
	)
	return nil
}

// Recalculate runs status reconciliation on demand, without any payment
// mutation. Useful after a due date passes.
func (s *InvoiceService) Recalculate(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.reconciler.Reconcile(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
