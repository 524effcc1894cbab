package billing

import (
	"fmt"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodOther        PaymentMethod = "Other"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment represents an amount applied against an invoice
type Payment struct {
	shared.BaseEntity
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// NewPayment creates a new payment dated today
func NewPayment(invoiceID uuid.UUID, amountPaid decimal.Decimal, method PaymentMethod, transactionID, notes string) (*Payment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if !amountPaid.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount paid must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Invalid payment method: %s", method))
	}

	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceID:     invoiceID,
		PaymentDate:   time.Now(),
		AmountPaid:    amountPaid,
		Method:        method,
		TransactionID: transactionID,
		Notes:         notes,
	}, nil
}

// SetAmountPaid updates the paid amount
func (p *Payment) SetAmountPaid(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount paid must be positive")
	}
	p.AmountPaid = amount
	p.Touch()
	return nil
}

// SetMethod updates the payment method
func (p *Payment) SetMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Invalid payment method: %s", method))
	}
	p.Method = method
	p.Touch()
	return nil
}

// SetTransactionID updates the external transaction reference
func (p *Payment) SetTransactionID(transactionID string) {
	p.TransactionID = transactionID
	p.Touch()
}

// SetNotes sets the notes
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
	p.Touch()
}
