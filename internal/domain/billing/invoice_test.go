package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier/backend/internal/domain/shared"
)

func TestNewInvoice(t *testing.T) {
	orderID := uuid.New()
	dueDate := time.Now().AddDate(0, 0, 30)

	inv, err := NewInvoice(orderID, dueDate, decimal.RequireFromString("100.00"), "rush job")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, orderID, inv.OrderID)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "rush job", inv.Notes)
	assert.False(t, inv.InvoiceDate.IsZero())
}

func TestNewInvoiceValidation(t *testing.T) {
	dueDate := time.Now().AddDate(0, 0, 30)

	_, err := NewInvoice(uuid.Nil, dueDate, decimal.NewFromInt(100), "")
	assertDomainCode(t, err, "INVALID_ORDER")

	_, err = NewInvoice(uuid.New(), time.Time{}, decimal.NewFromInt(100), "")
	assertDomainCode(t, err, "INVALID_DUE_DATE")

	_, err = NewInvoice(uuid.New(), dueDate, decimal.NewFromInt(-1), "")
	assertDomainCode(t, err, "INVALID_AMOUNT")
}

func TestNewInvoiceAllowsZeroTotal(t *testing.T) {
	_, err := NewInvoice(uuid.New(), time.Now().AddDate(0, 0, 30), decimal.Zero, "")
	assert.NoError(t, err)
}

func TestChangeStatusAllowsAnyValidTransition(t *testing.T) {
	inv := newTestInvoice(t, "100.00", time.Now().AddDate(0, 0, 30), InvoiceStatusDraft)

	// Cancelled back to Draft is allowed; only reconciliation treats
	// Cancelled as terminal.
	require.NoError(t, inv.ChangeStatus(InvoiceStatusCancelled))
	require.NoError(t, inv.ChangeStatus(InvoiceStatusDraft))
	assert.Equal(t, InvoiceStatusDraft, inv.Status)

	err := inv.ChangeStatus(InvoiceStatus("Refunded"))
	assertDomainCode(t, err, "INVALID_STATUS")
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
}

func TestInvoiceStatusIsIssued(t *testing.T) {
	assert.False(t, InvoiceStatusDraft.IsIssued())
	for _, s := range []InvoiceStatus{InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusPartial, InvoiceStatusOverdue, InvoiceStatusCancelled} {
		assert.True(t, s.IsIssued(), s.String())
	}
}

func TestInvoiceIsOverdue(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	inv := newTestInvoice(t, "100.00", today.AddDate(0, 0, -1), InvoiceStatusSent)
	assert.True(t, inv.IsOverdue(today))

	inv.Status = InvoiceStatusCancelled
	assert.False(t, inv.IsOverdue(today))

	future := newTestInvoice(t, "100.00", today.AddDate(0, 0, 1), InvoiceStatusSent)
	assert.False(t, future.IsOverdue(today))
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok, "expected *shared.DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}
