// Package flow derives the tourist flow of the day from a season calendar.
package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/aevon-lab/pos-analytics/internal/signals"
)

// MonthDay is a calendar date without a year, written "MM-DD".
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD".
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q (want MM-DD): %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (m MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(m.Month), m.Day)
}

func (m MonthDay) ordinal() int {
	return int(m.Month)*100 + m.Day
}

// Season is an inclusive window that may wrap the new year (12-15 .. 03-15).
type Season struct {
	Start MonthDay
	End   MonthDay
}

// ParseSeason parses a start and end "MM-DD" pair.
func ParseSeason(start, end string) (Season, error) {
	s, err := ParseMonthDay(start)
	if err != nil {
		return Season{}, err
	}
	e, err := ParseMonthDay(end)
	if err != nil {
		return Season{}, err
	}
	return Season{Start: s, End: e}, nil
}

func (s Season) Contains(md MonthDay) bool {
	o := md.ordinal()
	if s.Start.ordinal() <= s.End.ordinal() {
		return o >= s.Start.ordinal() && o <= s.End.ordinal()
	}
	return o >= s.Start.ordinal() || o <= s.End.ordinal()
}

// DefaultSeasons covers the Atlantic coast summer and the winter break.
func DefaultSeasons() []Season {
	return []Season{
		{Start: MonthDay{time.December, 15}, End: MonthDay{time.March, 15}},
		{Start: MonthDay{time.July, 10}, End: MonthDay{time.August, 5}},
	}
}

// Calendar implements signals.FlowProvider.
type Calendar struct {
	clock   *clock.Clock
	seasons []Season
	nowFn   func() time.Time
}

var _ signals.FlowProvider = (*Calendar)(nil)

func NewCalendar(c *clock.Clock, seasons []Season) *Calendar {
	return &Calendar{
		clock:   c,
		seasons: append([]Season(nil), seasons...),
		nowFn:   time.Now,
	}
}

func (c *Calendar) TouristFlow(ctx context.Context) (signals.Flow, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.FlowOn(c.clock.BusinessDayStart(c.nowFn())), nil
}

// InSeason reports whether the calendar date of day falls in any season.
func (c *Calendar) InSeason(day time.Time) bool {
	md := MonthDay{Month: day.Month(), Day: day.Day()}
	for _, s := range c.seasons {
		if s.Contains(md) {
			return true
		}
	}
	return false
}

// FlowOn classifies the calendar date of day, read in day's own zone.
func (c *Calendar) FlowOn(day time.Time) signals.Flow {
	wd := day.Weekday()

	if c.InSeason(day) {
		switch wd {
		case time.Friday:
			return signals.FlowArrival
		case time.Saturday:
			return signals.FlowHigh
		case time.Sunday:
			return signals.FlowDeparture
		default:
			return signals.FlowMedium
		}
	}

	if wd == time.Saturday || wd == time.Sunday {
		return signals.FlowMedium
	}
	return signals.FlowStandard
}
