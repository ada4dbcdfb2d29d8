package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func foldTotals(op string, totals ...string) decimal.Decimal {
	agg := Operators[op]
	var acc decimal.Decimal
	for i, raw := range totals {
		v := decimal.RequireFromString(raw)
		if i == 0 {
			acc = agg.Initial(v)
			continue
		}
		acc = agg.Apply(acc, v)
	}
	return acc
}

func TestOperators_TicketTotals(t *testing.T) {
	totals := []string{"1500.50", "320", "8999.99", "0", "320"}

	tests := []struct {
		op   string
		want string
	}{
		{OpCount, "5"},
		{OpSum, "11140.49"},
		{OpMin, "0"},
		{OpMax, "8999.99"},
	}

	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			got := foldTotals(tc.op, totals...)
			require.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestOperators_SingleTicket(t *testing.T) {
	require.True(t, decimal.NewFromInt(1).Equal(foldTotals(OpCount, "42.10")))
	for _, op := range []string{OpSum, OpMin, OpMax} {
		require.True(t, decimal.RequireFromString("42.10").Equal(foldTotals(op, "42.10")), op)
	}
}
