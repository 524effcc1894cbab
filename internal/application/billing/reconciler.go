package billing

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/billing"
	"go.uber.org/zap"
)

// Reconciler recomputes an invoice's status from the payments on record.
// Both the invoice and payment services run it after every payment mutation,
// so the stored status never drifts from the payment ledger.
type Reconciler struct {
	invoiceRepo billing.InvoiceRepository
	paymentRepo billing.PaymentRepository
	logger      *zap.Logger
}

// NewReconciler creates a reconciler
func NewReconciler(invoiceRepo billing.InvoiceRepository, paymentRepo billing.PaymentRepository, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Reconcile derives and persists the invoice's status. The invoice is saved
// only when the status actually changes. Returns the status the invoice
// carries afterwards.
func (r *Reconciler) Reconcile(ctx context.Context, inv *billing.Invoice) (billing.InvoiceStatus, error) {
	payments, err := r.paymentRepo.FindByInvoice(ctx, inv.ID)
	if err != nil {
		return inv.Status, err
	}

	totalPaid := billing.TotalPaid(payments)
	next := billing.ReconcileStatus(inv, totalPaid, time.Now())
	if next == inv.Status {
		return next, nil
	}

	previous := inv.Status
	if err := inv.ChangeStatus(next); err != nil {
		return previous, err
	}
	if err := r.invoiceRepo.Save(ctx, inv); err != nil {
		return previous, err
	}

	r.logger.Info("Invoice status reconciled",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("previous_status", previous.String()),
		zap.String("new_status", next.String()),
		zap.String("total_paid", totalPaid.String()),
		zap.String("total_amount", inv.TotalAmount.String()),
	)
	return next, nil
}
