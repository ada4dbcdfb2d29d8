package period

import (
	"errors"
	"testing"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func local(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh+3, mm, 0, 0, time.UTC)
}

func testClock(t *testing.T) *clock.Clock {
	t.Helper()
	c, err := clock.Load(clock.DefaultZone, clock.DefaultCutoffHour)
	require.NoError(t, err)
	return c
}

func saleAt(ts time.Time, total int64) *v1.Sale {
	return &v1.Sale{LocationID: 1, CreatedAt: ts, Total: decimal.NewFromInt(total)}
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("")
	require.NoError(t, err)
	require.Equal(t, Today, sel)

	sel, err = ParseSelector("current_month")
	require.NoError(t, err)
	require.Equal(t, CurrentMonth, sel)

	_, err = ParseSelector("last_year")
	require.True(t, errors.Is(err, ErrUnknownSelector))
}

func TestResolve_Last7Days(t *testing.T) {
	c := testClock(t)
	now := local(2024, 3, 15, 0, 0)

	r, err := Resolve(c, Last7Days, now)
	require.NoError(t, err)

	require.True(t, local(2024, 3, 8, 0, 0).Equal(r.Current.Start))
	require.True(t, now.Equal(r.Current.End))
	require.True(t, local(2024, 3, 1, 0, 0).Equal(r.Previous.Start))
	require.True(t, local(2024, 3, 8, 0, 0).Equal(r.Previous.End))

	require.True(t, r.Current.Contains(now), "current window includes now")
	require.False(t, r.Previous.Contains(r.Previous.End), "comparison window excludes its end")
}

func TestResolve_BoundaryInstantInExactlyOneWindow(t *testing.T) {
	c := testClock(t)
	now := local(2024, 3, 15, 0, 0)

	for _, sel := range []Selector{Today, Last7Days, Last30Days, CurrentMonth} {
		t.Run(string(sel), func(t *testing.T) {
			r, err := Resolve(c, sel, now)
			require.NoError(t, err)

			boundary := r.Current.Start
			require.NotEqual(t, r.Current.Contains(boundary), r.Previous.Contains(boundary))

			cur, prev := r.Split([]*v1.Sale{saleAt(boundary, 5)})
			require.Equal(t, 1, len(cur)+len(prev))
		})
	}
}

func TestResolve_TodayUsesBusinessDay(t *testing.T) {
	c := testClock(t)

	// 01:30 on the 15th still trades on the 14th.
	now := local(2024, 3, 15, 1, 30)
	r, err := Resolve(c, Today, now)
	require.NoError(t, err)

	require.True(t, local(2024, 3, 14, 3, 0).Equal(r.Current.Start))
	require.True(t, local(2024, 3, 13, 3, 0).Equal(r.Previous.Start))
	require.True(t, local(2024, 3, 14, 3, 0).Equal(r.Previous.End))

	cur, prev := r.Split([]*v1.Sale{
		saleAt(local(2024, 3, 14, 22, 0), 10),
		saleAt(local(2024, 3, 14, 2, 59), 20),
		saleAt(local(2024, 3, 12, 12, 0), 30),
	})
	require.Len(t, cur, 1)
	require.Len(t, prev, 1)
	require.True(t, decimal.NewFromInt(20).Equal(prev[0].Total))
}

func TestResolve_CurrentMonthComparesFullPreviousMonth(t *testing.T) {
	c := testClock(t)
	now := local(2024, 3, 5, 12, 0)

	r, err := Resolve(c, CurrentMonth, now)
	require.NoError(t, err)

	require.True(t, local(2024, 3, 1, 0, 0).Equal(r.Current.Start))
	require.True(t, local(2024, 2, 1, 0, 0).Equal(r.Previous.Start))
	require.True(t, local(2024, 3, 1, 0, 0).Equal(r.Previous.End))
	require.True(t, r.Previous.Contains(local(2024, 2, 29, 23, 0)))
}

func TestResolve_AllTime(t *testing.T) {
	c := testClock(t)
	r, err := Resolve(c, AllTime, local(2024, 3, 15, 12, 0))
	require.NoError(t, err)

	cur, prev := r.Split([]*v1.Sale{
		saleAt(local(2019, 1, 1, 12, 0), 1),
		saleAt(local(2024, 3, 15, 11, 0), 1),
	})
	require.Len(t, cur, 2)
	require.Empty(t, prev)
}

func TestResolve_UnknownSelector(t *testing.T) {
	c := testClock(t)
	_, err := Resolve(c, Selector("yesterday"), local(2024, 3, 15, 12, 0))
	require.True(t, errors.Is(err, ErrUnknownSelector))
}

func TestDelta(t *testing.T) {
	pct, ok := Delta(decimal.NewFromInt(150), decimal.NewFromInt(100))
	require.True(t, ok)
	require.True(t, decimal.NewFromInt(50).Equal(pct))

	pct, ok = Delta(decimal.NewFromInt(50), decimal.NewFromInt(200))
	require.True(t, ok)
	require.True(t, decimal.NewFromInt(-75).Equal(pct))

	_, ok = Delta(decimal.NewFromInt(50), decimal.Zero)
	require.False(t, ok)
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "default", input: "", want: 30},
		{name: "plain", input: "7", want: 7},
		{name: "days suffix", input: "14d", want: 14},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3d", wantErr: true},
		{name: "garbage", input: "xd", wantErr: true},
		{name: "too large", input: "400", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDays(tc.input, 30)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
