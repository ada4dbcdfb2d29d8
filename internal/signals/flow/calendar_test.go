package flow

import (
	"context"
	"testing"
	"time"

	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/stretchr/testify/require"
)

func local(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh+3, mm, 0, 0, time.UTC)
}

func testCalendar(t *testing.T, now time.Time) *Calendar {
	t.Helper()
	c, err := clock.Load(clock.DefaultZone, clock.DefaultCutoffHour)
	require.NoError(t, err)

	cal := NewCalendar(c, DefaultSeasons())
	cal.nowFn = func() time.Time { return now }
	return cal
}

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("12-15")
	require.NoError(t, err)
	require.Equal(t, MonthDay{Month: time.December, Day: 15}, md)
	require.Equal(t, "12-15", md.String())

	for _, bad := range []string{"", "13-01", "12/15", "02-30x"} {
		_, err := ParseMonthDay(bad)
		require.Error(t, err, bad)
	}
}

func TestSeason_Contains(t *testing.T) {
	summer, err := ParseSeason("12-15", "03-15")
	require.NoError(t, err)
	winter, err := ParseSeason("07-10", "08-05")
	require.NoError(t, err)

	tests := []struct {
		season Season
		day    MonthDay
		want   bool
	}{
		{summer, MonthDay{time.December, 14}, false},
		{summer, MonthDay{time.December, 15}, true},
		{summer, MonthDay{time.January, 1}, true},
		{summer, MonthDay{time.March, 15}, true},
		{summer, MonthDay{time.March, 16}, false},
		{winter, MonthDay{time.July, 9}, false},
		{winter, MonthDay{time.July, 20}, true},
		{winter, MonthDay{time.August, 6}, false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.season.Contains(tc.day), "%s..%s contains %s", tc.season.Start, tc.season.End, tc.day)
	}
}

func TestCalendar_TouristFlow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want signals.Flow
	}{
		// 2024-03-15 is a Friday inside the summer season.
		{"in season friday", local(2024, 3, 15, 12, 0), signals.FlowArrival},
		{"in season saturday", local(2024, 3, 9, 12, 0), signals.FlowHigh},
		{"in season sunday", local(2024, 3, 10, 12, 0), signals.FlowDeparture},
		{"in season weekday", local(2024, 3, 13, 12, 0), signals.FlowMedium},
		{"off season saturday", local(2024, 4, 13, 12, 0), signals.FlowMedium},
		{"off season sunday", local(2024, 4, 14, 12, 0), signals.FlowMedium},
		{"off season weekday", local(2024, 4, 16, 12, 0), signals.FlowStandard},
		// 02:00 on Saturday still belongs to Friday's business day.
		{"after midnight stays with friday", local(2024, 3, 16, 2, 0), signals.FlowArrival},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := testCalendar(t, tc.now).TouristFlow(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.want, f)
		})
	}
}

func TestCalendar_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testCalendar(t, local(2024, 3, 15, 12, 0)).TouristFlow(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
