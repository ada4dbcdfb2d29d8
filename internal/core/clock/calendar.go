package clock

import "time"

// Shift is a coarse trading segment of the day.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftMidday    Shift = "midday"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
	// ShiftClosed covers [2,9) local. Sales in it belong to no shift report.
	ShiftClosed Shift = "closed"
)

// Shifts lists the reporting shifts in display order. ShiftClosed is not part of it.
var Shifts = []Shift{ShiftMorning, ShiftMidday, ShiftAfternoon, ShiftNight}

// ShiftForHour maps a local hour onto its shift.
func ShiftForHour(hour int) Shift {
	switch {
	case hour >= 9 && hour < 12:
		return ShiftMorning
	case hour >= 12 && hour < 16:
		return ShiftMidday
	case hour >= 16 && hour < 20:
		return ShiftAfternoon
	case hour >= 20 || hour < 2:
		return ShiftNight
	default:
		return ShiftClosed
	}
}

// ShiftOf returns the shift containing t.
func (c *Clock) ShiftOf(t time.Time) Shift {
	return ShiftForHour(c.Hour(t))
}

// ISOWeekday numbers weekdays Monday=1 through Sunday=7.
type ISOWeekday int

const (
	Monday ISOWeekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (d ISOWeekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayLabels[d]
}

// ISO converts a time.Weekday.
func ISO(d time.Weekday) ISOWeekday {
	if d == time.Sunday {
		return Sunday
	}
	return ISOWeekday(d)
}

// Weekdays returns Monday through Sunday.
func Weekdays() []ISOWeekday {
	return []ISOWeekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Weekday returns the local calendar weekday of t.
func (c *Clock) Weekday(t time.Time) ISOWeekday {
	return ISO(c.Local(t).Weekday())
}
