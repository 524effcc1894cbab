package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconcileStatus derives the status an invoice should carry given the total
// amount paid against it and today's date. The rules, in order:
//
//  1. Cancelled is terminal: the current status is returned untouched.
//  2. totalPaid >= total amount: Paid.
//  3. 0 < totalPaid < total amount: Partial.
//  4. totalPaid == 0:
//     a. due date strictly before today and status is neither Draft nor Sent: Overdue.
//     b. status is Paid or Partial (payments were all removed): Sent.
//     c. otherwise the current status stands.
//
// Rule 4b keeps "has been issued" sticky: a fully-paid-then-emptied invoice
// reverts to Sent rather than Draft. Overdue is only inferred from a past due
// date at reconciliation time; nothing sweeps invoices on a schedule.
func ReconcileStatus(inv *Invoice, totalPaid decimal.Decimal, today time.Time) InvoiceStatus {
	if inv.Status == InvoiceStatusCancelled {
		return inv.Status
	}

	switch {
	case totalPaid.GreaterThanOrEqual(inv.TotalAmount):
		return InvoiceStatusPaid
	case totalPaid.IsPositive():
		return InvoiceStatusPartial
	}

	// No payments on record.
	if DayBefore(inv.DueDate, today) && inv.Status != InvoiceStatusDraft && inv.Status != InvoiceStatusSent {
		return InvoiceStatusOverdue
	}
	if inv.Status == InvoiceStatusPaid || inv.Status == InvoiceStatusPartial {
		return InvoiceStatusSent
	}
	return inv.Status
}

// TotalPaid sums the paid amounts of the given payments
func TotalPaid(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.AmountPaid)
	}
	return total
}

// DayBefore reports whether a falls on an earlier calendar day than b.
// Comparison is by date, not instant: an invoice due earlier today is not yet
// overdue.
func DayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
