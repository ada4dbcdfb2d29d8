package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for minimal containers
)

const (
	DefaultZone       = "America/Argentina/Buenos_Aires"
	DefaultCutoffHour = 3

	dayKeyLayout = "2006-01-02"
)

// DayKey identifies a business day as "YYYY-MM-DD" in the clock's zone.
// Keys sort lexically in chronological order.
type DayKey string

// Time parses the key back into the local calendar date at midnight.
func (k DayKey) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, string(k), loc)
}

// Clock maps instants onto the trading calendar of the business.
// A business day opens at the cutoff hour local time and closes at the same
// hour the next calendar day, so after-midnight trading stays with the
// night it belongs to.
type Clock struct {
	loc    *time.Location
	cutoff int
}

// New returns a Clock for loc. cutoffHour must be in [0, 23].
func New(loc *time.Location, cutoffHour int) (*Clock, error) {
	if loc == nil {
		return nil, fmt.Errorf("clock: location is required")
	}
	if cutoffHour < 0 || cutoffHour > 23 {
		return nil, fmt.Errorf("clock: cutoff hour %d out of range [0,23]", cutoffHour)
	}
	return &Clock{loc: loc, cutoff: cutoffHour}, nil
}

// Load resolves zone by IANA name and builds a Clock.
func Load(zone string, cutoffHour int) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("clock: loading zone %q: %w", zone, err)
	}
	return New(loc, cutoffHour)
}

// MustLoad is Load for package-level defaults and tests.
func MustLoad(zone string, cutoffHour int) *Clock {
	c, err := Load(zone, cutoffHour)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Clock) Location() *time.Location { return c.loc }

// Local converts t into the clock's zone. A zero instant is a broken record
// upstream and panics.
func (c *Clock) Local(t time.Time) time.Time {
	if t.IsZero() {
		panic("clock: zero timestamp")
	}
	return t.In(c.loc)
}

// BusinessDay returns the key of the business day containing t.
func (c *Clock) BusinessDay(t time.Time) DayKey {
	local := c.Local(t)
	if local.Hour() < c.cutoff {
		local = local.AddDate(0, 0, -1)
	}
	return DayKey(local.Format(dayKeyLayout))
}

// DayStart returns the instant the business day key opens.
func (c *Clock) DayStart(key DayKey) (time.Time, error) {
	d, err := key.Time(c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("clock: invalid day key %q: %w", key, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.cutoff, 0, 0, 0, c.loc), nil
}

// BusinessDayStart returns the opening instant of the business day containing t.
func (c *Clock) BusinessDayStart(t time.Time) time.Time {
	local := c.Local(t)
	start := time.Date(local.Year(), local.Month(), local.Day(), c.cutoff, 0, 0, 0, c.loc)
	if local.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// AddDays shifts key by n business days.
func (c *Clock) AddDays(key DayKey, n int) DayKey {
	d, err := key.Time(c.loc)
	if err != nil {
		panic(fmt.Sprintf("clock: invalid day key %q", key))
	}
	return DayKey(d.AddDate(0, 0, n).Format(dayKeyLayout))
}

// Hour returns the local hour of t in [0, 23].
func (c *Clock) Hour(t time.Time) int {
	return c.Local(t).Hour()
}
