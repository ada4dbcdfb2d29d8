package period

import (
	"errors"
	"fmt"
	"time"

	v1 "github.com/aevon-lab/pos-analytics/internal/api/v1"
	"github.com/aevon-lab/pos-analytics/internal/core/clock"
	"github.com/shopspring/decimal"
)

// Selector names a relative reporting range.
type Selector string

const (
	Today        Selector = "today"
	Last7Days    Selector = "last_7_days"
	Last30Days   Selector = "last_30_days"
	CurrentMonth Selector = "current_month"
	AllTime      Selector = "all_time"
)

// Selectors lists every supported range.
var Selectors = []Selector{Today, Last7Days, Last30Days, CurrentMonth, AllTime}

// ErrUnknownSelector is returned by ParseSelector.
var ErrUnknownSelector = errors.New("unknown range selector")

// ParseSelector validates s. An empty string selects Today.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return Today, nil
	}
	for _, sel := range Selectors {
		if Selector(s) == sel {
			return sel, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSelector, s)
}

// Window is a span of instants. Current windows include their end instant;
// comparison windows stop just before it, so the boundary between the two
// belongs to exactly one of them.
type Window struct {
	Start     time.Time `json:"start,omitempty"`
	End       time.Time `json:"end,omitempty"`
	Closed    bool      `json:"-"`
	Unbounded bool      `json:"unbounded,omitempty"`
	Empty     bool      `json:"empty,omitempty"`
}

// Contains reports whether t falls in the window.
func (w Window) Contains(t time.Time) bool {
	switch {
	case w.Empty:
		return false
	case w.Unbounded:
		return true
	case t.Before(w.Start):
		return false
	case w.Closed:
		return !t.After(w.End)
	default:
		return t.Before(w.End)
	}
}

// Range pairs the current window with the period it is compared against.
type Range struct {
	Selector Selector `json:"selector"`
	Current  Window   `json:"current"`
	Previous Window   `json:"previous"`
}

// Resolve computes the windows of sel relative to now.
func Resolve(c *clock.Clock, sel Selector, now time.Time) (Range, error) {
	local := c.Local(now)
	r := Range{Selector: sel}

	switch sel {
	case Today:
		start := c.BusinessDayStart(now)
		r.Current = current(start, local)
		r.Previous = previous(start.AddDate(0, 0, -1), start)
	case Last7Days, Last30Days:
		days := 7
		if sel == Last30Days {
			days = 30
		}
		start := local.AddDate(0, 0, -days)
		r.Current = current(start, local)
		r.Previous = previous(start.AddDate(0, 0, -days), start)
	case CurrentMonth:
		start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, c.Location())
		r.Current = current(start, local)
		// The full previous month, not the same number of days.
		r.Previous = previous(start.AddDate(0, -1, 0), start)
	case AllTime:
		r.Current = Window{Unbounded: true}
		r.Previous = Window{Empty: true}
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownSelector, sel)
	}
	return r, nil
}

// Split partitions sales into the current and previous windows. Sales in
// neither window are dropped.
func (r Range) Split(sales []*v1.Sale) (cur, prev []*v1.Sale) {
	cur = make([]*v1.Sale, 0, len(sales))
	prev = make([]*v1.Sale, 0)
	for _, s := range sales {
		switch {
		case r.Current.Contains(s.CreatedAt):
			cur = append(cur, s)
		case r.Previous.Contains(s.CreatedAt):
			prev = append(prev, s)
		}
	}
	return cur, prev
}

// Delta returns the percentage change from previous to current, rounded to
// two places. ok is false when previous is zero and no comparison exists.
func Delta(current, previous decimal.Decimal) (pct decimal.Decimal, ok bool) {
	if previous.IsZero() {
		return decimal.Zero, false
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2), true
}

func current(start, end time.Time) Window {
	return Window{Start: start, End: end, Closed: true}
}

func previous(start, end time.Time) Window {
	return Window{Start: start, End: end}
}
