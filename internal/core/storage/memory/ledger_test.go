package memory

import (
	"context"
	"testing"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, l *Ledger) time.Time {
	t.Helper()
	base := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)
	sales := []*v1.Sale{
		{ID: "a", LocationID: 1, CreatedAt: base, Total: decimal.NewFromInt(10), PaymentMethod: v1.PaymentCash,
			Items: []v1.LineItem{{ProductID: "p1", Quantity: 1, Subtotal: decimal.NewFromInt(10)}}},
		{ID: "b", LocationID: 2, CreatedAt: base.Add(time.Hour), Total: decimal.NewFromInt(20), PaymentMethod: v1.PaymentCredit,
			Items: []v1.LineItem{{ProductID: "p2", Quantity: 1, Subtotal: decimal.NewFromInt(20)}}},
		{ID: "c", LocationID: 1, CreatedAt: base.Add(2 * time.Hour), Total: decimal.NewFromInt(30), PaymentMethod: v1.PaymentCash,
			Items: []v1.LineItem{{ProductID: "p3", Quantity: 1, Subtotal: decimal.NewFromInt(30)}}},
	}
	for _, s := range sales {
		require.NoError(t, l.SaveSale(context.Background(), s))
	}
	return base
}

func ids(sales []*v1.Sale) []string {
	out := make([]string, len(sales))
	for i, s := range sales {
		out[i] = s.ID
	}
	return out
}

func TestLedger_FetchNewestFirst(t *testing.T) {
	l := NewLedger()
	seed(t, l)
	ctx := context.Background()

	all, err := l.FetchAll(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, ids(all))

	limited, err := l.FetchAll(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, ids(limited))

	loc1, err := l.FetchByLocation(ctx, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, ids(loc1))
}

func TestLedger_FetchMatching(t *testing.T) {
	l := NewLedger()
	base := seed(t, l)
	ctx := context.Background()

	got, err := l.FetchMatching(ctx, storage.Filter{Since: base.Add(time.Hour)})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, ids(got))

	got, err = l.FetchMatching(ctx, storage.Filter{Before: base.Add(time.Hour)})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, ids(got))

	got, err = l.FetchMatching(ctx, storage.Filter{PaymentMethod: v1.PaymentCredit})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, ids(got))
}

func TestLedger_SaveAndDelete(t *testing.T) {
	l := NewLedger()
	seed(t, l)
	ctx := context.Background()

	err := l.SaveSale(ctx, &v1.Sale{ID: "a"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	require.NoError(t, l.DeleteSale(ctx, "a"))
	require.ErrorIs(t, l.DeleteSale(ctx, "a"), storage.ErrNotFound)

	all, err := l.FetchAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestLedger_ReturnsCopies(t *testing.T) {
	l := NewLedger()
	seed(t, l)
	ctx := context.Background()

	first, err := l.FetchAll(ctx, 1)
	require.NoError(t, err)
	first[0].Items[0].Quantity = 99

	again, err := l.FetchAll(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, again[0].Items[0].Quantity)
}

func TestLedger_CancelledContext(t *testing.T) {
	l := NewLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.FetchAll(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, l.Ping(ctx), context.Canceled)
}
