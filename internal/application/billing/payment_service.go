package billing

import (
	"context"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService handles payment recording. Every mutation ends with a
// reconciliation of the owning invoice's status.
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	invoiceRepo billing.InvoiceRepository
	reconciler  *Reconciler
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	invoiceRepo billing.InvoiceRepository,
	reconciler *Reconciler,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// Add records a payment against an invoice and reconciles the invoice status
func (s *PaymentService) Add(ctx context.Context, invoiceID uuid.UUID, amount decimal.Decimal, method billing.PaymentMethod, transactionID, notes string) (*billing.Payment, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	payment, err := billing.NewPayment(invoiceID, amount, method, transactionID, notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("invoice_id", invoiceID.String()),
		zap.String("amount", amount.String()),
		zap.String("method", method.String()),
	)

	if _, err := s.reconciler.Reconcile(ctx, invoice); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetByID returns a single payment
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListAll returns all payments
func (s *PaymentService) ListAll(ctx context.Context) ([]billing.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// ListForInvoice returns all payments applied to an invoice
func (s *PaymentService) ListForInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	return s.paymentRepo.FindByInvoice(ctx, invoiceID)
}

// Update edits a payment. Nil parameters leave the corresponding field
// untouched. The owning invoice is reconciled afterwards since the amount may
// have changed.
func (s *PaymentService) Update(ctx context.Context, id uuid.UUID, amount *decimal.Decimal, method *billing.PaymentMethod, transactionID, notes *string) (*billing.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if err := payment.SetAmountPaid(*amount); err != nil {
			return nil, err
		}
	}
	if method != nil {
		if err := payment.SetMethod(*method); err != nil {
			return nil, err
		}
	}
	if transactionID != nil {
		payment.SetTransactionID(*transactionID)
	}
	if notes != nil {
		payment.SetNotes(*notes)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.reconcileInvoice(ctx, payment.InvoiceID); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes a payment and reconciles the invoice it was applied to
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Payment deleted",
		zap.String("payment_id", id.String()),
		zap.String("invoice_id", payment.InvoiceID.String()),
	)
	return s.reconcileInvoice(ctx, payment.InvoiceID)
}

func (s *PaymentService) reconcileInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	_, err = s.reconciler.Reconcile(ctx, invoice)
	return err
}
