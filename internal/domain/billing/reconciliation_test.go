package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T, total string, dueDate time.Time, status InvoiceStatus) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), dueDate, decimal.RequireFromString(total), "")
	require.NoError(t, err)
	inv.Status = status
	return inv
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestReconcileStatus(t *testing.T) {
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	future := today.AddDate(0, 0, 30)
	past := today.AddDate(0, 0, -1)

	tests := []struct {
		name      string
		status    InvoiceStatus
		dueDate   time.Time
		totalPaid string
		want      InvoiceStatus
	}{
		{"full payment is paid", InvoiceStatusSent, future, "100.00", InvoiceStatusPaid},
		{"overpayment is paid", InvoiceStatusSent, future, "150.00", InvoiceStatusPaid},
		{"partial payment is partial", InvoiceStatusSent, future, "40.00", InvoiceStatusPartial},
		{"partial beats overdue when past due", InvoiceStatusOverdue, past, "40.00", InvoiceStatusPartial},
		{"unpaid past due reverts from paid to overdue", InvoiceStatusPaid, past, "0", InvoiceStatusOverdue},
		{"unpaid past due overdue stays overdue", InvoiceStatusOverdue, past, "0", InvoiceStatusOverdue},
		{"unpaid past due draft stays draft", InvoiceStatusDraft, past, "0", InvoiceStatusDraft},
		{"unpaid past due sent stays sent", InvoiceStatusSent, past, "0", InvoiceStatusSent},
		{"emptied paid invoice reverts to sent", InvoiceStatusPaid, future, "0", InvoiceStatusSent},
		{"emptied partial invoice reverts to sent", InvoiceStatusPartial, future, "0", InvoiceStatusSent},
		{"unpaid draft stays draft", InvoiceStatusDraft, future, "0", InvoiceStatusDraft},
		{"unpaid sent stays sent", InvoiceStatusSent, future, "0", InvoiceStatusSent},
		{"cancelled ignores full payment", InvoiceStatusCancelled, future, "100.00", InvoiceStatusCancelled},
		{"cancelled ignores past due", InvoiceStatusCancelled, past, "0", InvoiceStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newTestInvoice(t, "100.00", tt.dueDate, tt.status)
			got := ReconcileStatus(inv, d(tt.totalPaid), today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileStatusDueTodayIsNotOverdue(t *testing.T) {
	// Due earlier today, compared later the same day: same calendar date,
	// so not yet overdue.
	today := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)

	inv := newTestInvoice(t, "100.00", dueDate, InvoiceStatusOverdue)
	got := ReconcileStatus(inv, decimal.Zero, today)
	assert.Equal(t, InvoiceStatusOverdue, got, "already overdue stays overdue")

	inv2 := newTestInvoice(t, "100.00", dueDate, InvoiceStatusPaid)
	got2 := ReconcileStatus(inv2, decimal.Zero, today)
	assert.Equal(t, InvoiceStatusSent, got2, "due today does not trip overdue")
}

func TestReconcileStatusZeroTotalInvoiceIsPaid(t *testing.T) {
	// A zero-amount invoice is trivially covered.
	inv := newTestInvoice(t, "0", time.Now().AddDate(0, 0, 30), InvoiceStatusSent)
	got := ReconcileStatus(inv, decimal.Zero, time.Now())
	assert.Equal(t, InvoiceStatusPaid, got)
}

func TestTotalPaid(t *testing.T) {
	invoiceID := uuid.New()
	p1, err := NewPayment(invoiceID, d("40.00"), PaymentMethodCash, "", "")
	require.NoError(t, err)
	p2, err := NewPayment(invoiceID, d("19.99"), PaymentMethodCreditCard, "", "")
	require.NoError(t, err)

	total := TotalPaid([]Payment{*p1, *p2})
	assert.True(t, total.Equal(d("59.99")))
	assert.True(t, TotalPaid(nil).IsZero())
}

func TestDayBefore(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, DayBefore(base.AddDate(0, 0, -1), base))
	assert.True(t, DayBefore(base.AddDate(0, -1, 0), base))
	assert.True(t, DayBefore(base.AddDate(-1, 0, 0), base))
	assert.False(t, DayBefore(base, base))
	assert.False(t, DayBefore(base.Add(-6*time.Hour), base), "same calendar day")
	assert.False(t, DayBefore(base.AddDate(0, 0, 1), base))
}
