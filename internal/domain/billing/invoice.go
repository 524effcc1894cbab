package billing

import (
	"fmt"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusPartial   InvoiceStatus = "Partial"
	InvoiceStatusOverdue   InvoiceStatus = "Overdue"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid,
		InvoiceStatusPartial, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsIssued returns true for statuses that mean the invoice has left Draft.
// Used by reconciliation: an invoice whose payments were all removed falls
// back to Sent, never to Draft.
func (s InvoiceStatus) IsIssued() bool {
	return s != InvoiceStatusDraft
}

// Invoice represents a billing record for an order
type Invoice struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `json:"order_id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     time.Time       `json:"due_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      InvoiceStatus   `json:"status"`
	Notes       string          `json:"notes"`
}

// NewInvoice creates a new invoice in Draft status dated today
func NewInvoice(orderID uuid.UUID, dueDate time.Time, totalAmount decimal.Decimal, notes string) (*Invoice, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
	}

	return &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		InvoiceDate: time.Now(),
		DueDate:     dueDate,
		TotalAmount: totalAmount,
		Status:      InvoiceStatusDraft,
		Notes:       notes,
	}, nil
}

// ChangeStatus overwrites the status. Any status may move to any other;
// there is deliberately no transition graph here.
func (i *Invoice) ChangeStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Invalid invoice status: %s", status))
	}
	i.Status = status
	i.Touch()
	return nil
}

// SetDueDate updates the due date
func (i *Invoice) SetDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	}
	i.DueDate = dueDate
	i.Touch()
	return nil
}

// SetNotes sets the notes
func (i *Invoice) SetNotes(notes string) {
	i.Notes = notes
	i.Touch()
}

// IsCancelled returns true if the invoice is cancelled. Cancelled is terminal
// for automatic status recalculation.
func (i *Invoice) IsCancelled() bool {
	return i.Status == InvoiceStatusCancelled
}

// IsOverdue returns true if the invoice is past its due date and not cancelled
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.IsCancelled() {
		return false
	}
	return DayBefore(i.DueDate, today)
}
