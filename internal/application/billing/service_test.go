package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubOrderProvider serves a fixed set of order projections
type stubOrderProvider struct {
	orders map[uuid.UUID]billing.OrderInfo
}

func (s *stubOrderProvider) GetOrder(_ context.Context, orderID uuid.UUID) (*billing.OrderInfo, error) {
	info, ok := s.orders[orderID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &info, nil
}

type billingFixture struct {
	invoices *memory.InvoiceRepository
	payments *memory.PaymentRepository
	orders   *stubOrderProvider
	invSvc   *InvoiceService
	paySvc   *PaymentService
}

func newBillingFixture() *billingFixture {
	invoices := memory.NewInvoiceRepository()
	payments := memory.NewPaymentRepository()
	orders := &stubOrderProvider{orders: map[uuid.UUID]billing.OrderInfo{}}
	logger := zap.NewNop()
	reconciler := NewReconciler(invoices, payments, logger)

	return &billingFixture{
		invoices: invoices,
		payments: payments,
		orders:   orders,
		invSvc:   NewInvoiceService(invoices, payments, orders, reconciler, logger),
		paySvc:   NewPaymentService(payments, invoices, reconciler, logger),
	}
}

func (f *billingFixture) addPricedOrder(price string) uuid.UUID {
	id := uuid.New()
	p := decimal.RequireFromString(price)
	f.orders.orders[id] = billing.OrderInfo{ID: id, ClientID: uuid.New(), Price: &p}
	return id
}

func TestCreateForOrderRequiresPrice(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()

	unpriced := uuid.New()
	f.orders.orders[unpriced] = billing.OrderInfo{ID: unpriced, ClientID: uuid.New()}

	_, err := f.invSvc.CreateForOrder(ctx, unpriced, time.Now().AddDate(0, 0, 30), "")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestCreateForOrderUnknownOrder(t *testing.T) {
	f := newBillingFixture()

	_, err := f.invSvc.CreateForOrder(context.Background(), uuid.New(), time.Now().AddDate(0, 0, 30), "")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateForOrderUsesOrderPrice(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("250.50")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "two suits")
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("250.50")))
	assert.Equal(t, orderID, inv.OrderID)
	assert.Equal(t, "two suits", inv.Notes)
}

func TestPaymentLifecycleDrivesInvoiceStatus(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)

	// Partial payment
	p1, err := f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("40.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)
	current, err := f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPartial, current.Status)

	// Second payment completes the total
	p2, err := f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("60.00"), billing.PaymentMethodCreditCard, "txn-42", "")
	require.NoError(t, err)
	current, err = f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, current.Status)

	// Shrinking the first payment drops it back to Partial
	smaller := decimal.RequireFromString("10.00")
	_, err = f.paySvc.Update(ctx, p1.ID, &smaller, nil, nil, nil)
	require.NoError(t, err)
	current, err = f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPartial, current.Status)

	// Removing every payment reverts to Sent, never Draft
	require.NoError(t, f.paySvc.Delete(ctx, p1.ID))
	require.NoError(t, f.paySvc.Delete(ctx, p2.ID))
	current, err = f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusSent, current.Status)
}

func TestEmptiedInvoicePastDueBecomesOverdue(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	yesterday := time.Now().AddDate(0, 0, -1)
	inv, err := f.invSvc.CreateForOrder(ctx, orderID, yesterday, "")
	require.NoError(t, err)

	p, err := f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("1.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)
	require.NoError(t, f.paySvc.Delete(ctx, p.ID))

	current, err := f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusOverdue, current.Status)
}

func TestCancelledInvoiceStatusIsFrozen(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)
	_, err = f.invSvc.UpdateStatus(ctx, inv.ID, billing.InvoiceStatusCancelled)
	require.NoError(t, err)

	// Even a full payment leaves the status alone
	_, err = f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("100.00"), billing.PaymentMethodBankTransfer, "", "")
	require.NoError(t, err)
	current, err := f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusCancelled, current.Status)
}

func TestDraftInvoiceStaysDraftPastDue(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, -5), "")
	require.NoError(t, err)

	recalced, err := f.invSvc.Recalculate(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusDraft, recalced.Status)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)
	_, err = f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("50.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)

	first, err := f.invSvc.Recalculate(ctx, inv.ID)
	require.NoError(t, err)
	second, err := f.invSvc.Recalculate(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, billing.InvoiceStatusPartial, second.Status)
}

func TestOverpaymentIsPaid(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)
	_, err = f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("150.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)

	current, err := f.invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, current.Status)
}

func TestDeleteInvoiceCascadesToPayments(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)
	p1, err := f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("30.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)
	p2, err := f.paySvc.Add(ctx, inv.ID, decimal.RequireFromString("30.00"), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)

	require.NoError(t, f.invSvc.Delete(ctx, inv.ID))

	_, err = f.invSvc.GetByID(ctx, inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = f.paySvc.GetByID(ctx, p1.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = f.paySvc.GetByID(ctx, p2.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAddPaymentToUnknownInvoice(t *testing.T) {
	f := newBillingFixture()

	_, err := f.paySvc.Add(context.Background(), uuid.New(), decimal.RequireFromString("10.00"), billing.PaymentMethodCash, "", "")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAddPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newBillingFixture()
	ctx := context.Background()
	orderID := f.addPricedOrder("100.00")

	inv, err := f.invSvc.CreateForOrder(ctx, orderID, time.Now().AddDate(0, 0, 30), "")
	require.NoError(t, err)

	_, err = f.paySvc.Add(ctx, inv.ID, decimal.Zero, billing.PaymentMethodCash, "", "")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}
