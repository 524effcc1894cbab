package memory

import (
	"context"
	"testing"
	"time"

	"github.com/atelier/backend/internal/domain/billing"
	"github.com/atelier/backend/internal/domain/booking"
	"github.com/atelier/backend/internal/domain/client"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepositoryCRUD(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	c, err := client.NewClient("Ayse Demir", "+90 555 000 0000", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, found.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
}

func TestClientRepositoryReturnsCopies(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	c, err := client.NewClient("Ayse Demir", "+90 555 000 0000", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	first, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayse Demir", second.Name, "mutating a read result must not touch the store")
}

func TestClientRepositoryFindAllOrderedByCreation(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	first, err := client.NewClient("First", "1", "", "")
	require.NoError(t, err)
	second, err := client.NewClient("Second", "2", "", "")
	require.NoError(t, err)
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestPaymentRepositoryDeleteByInvoice(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()
	invoiceID := uuid.New()

	for i := 0; i < 3; i++ {
		p, err := billing.NewPayment(invoiceID, decimal.NewFromInt(10), billing.PaymentMethodCash, "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
	}
	other, err := billing.NewPayment(uuid.New(), decimal.NewFromInt(10), billing.PaymentMethodCash, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	removed, err := repo.DeleteByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	remaining, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	removed, err = repo.DeleteByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestBookingRepositoryFindInRange(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	mk := func(start time.Time, title string) {
		a, err := booking.NewAppointment(start, start.Add(time.Hour), title, nil, nil, "", "", booking.TypeFitting)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))
	}
	mk(base, "morning")
	mk(base.Add(5*time.Hour), "afternoon")
	mk(base.Add(26*time.Hour), "next day")

	inRange, err := repo.FindInRange(ctx, base.Add(-time.Hour), base.Add(8*time.Hour))
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	assert.Equal(t, "morning", inRange[0].Title)
	assert.Equal(t, "afternoon", inRange[1].Title)

	_, err = repo.FindInRange(ctx, base, base)
	assert.Error(t, err)
}

func TestInvoiceRepositoryFindByOrder(t *testing.T) {
	repo := NewInvoiceRepository()
	ctx := context.Background()
	orderID := uuid.New()

	inv1, err := billing.NewInvoice(orderID, time.Now().AddDate(0, 0, 10), decimal.NewFromInt(100), "")
	require.NoError(t, err)
	inv2, err := billing.NewInvoice(uuid.New(), time.Now().AddDate(0, 0, 10), decimal.NewFromInt(200), "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, inv1))
	require.NoError(t, repo.Save(ctx, inv2))

	forOrder, err := repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, forOrder, 1)
	assert.Equal(t, inv1.ID, forOrder[0].ID)
}
