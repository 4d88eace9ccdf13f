package kernel

import (
	"time"

	"restaurant/internal/pkg/errs"
)

// DayLayout is the wire and storage format for calendar dates.
const DayLayout = "2006-01-02"

// ErrDayIsNotConstructed indicates that a Day was not initialized through one
// of the constructor functions. It is returned when validating a zero-value Day.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError("Day must be created via DayOf, DayFromString, or Today")

// Day is a value object representing a calendar date without a time component.
// It keys the daily order counter and carries the order date of every order.
//
// The zero value is invalid; construct instances with DayOf, DayFromString
// or Today. Day is immutable and safe for concurrent use.
type Day struct {
	t time.Time
}

// DayOf returns the calendar date of the given instant, in the instant's location.
func DayOf(t time.Time) Day {
	year, month, day := t.Date()
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// DayFromString parses a date in the "2006-01-02" layout.
func DayFromString(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", err)
	}
	return Day{t: t}, nil
}

// String renders the date in the "2006-01-02" layout.
func (d Day) String() string {
	return d.t.Format(DayLayout)
}

// Time returns the date as midnight UTC of that day.
func (d Day) Time() time.Time {
	return d.t
}

// AddDays returns the date n days after (or before, for negative n) this one.
func (d Day) AddDays(n int) Day {
	return DayOf(d.t.AddDate(0, 0, n))
}

// Before reports whether this date falls strictly before other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// After reports whether this date falls strictly after other.
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// IsEqual compares two Days for equality by calendar date.
func (d Day) IsEqual(other Day) bool {
	return d.t.Equal(other.t)
}

// Validate checks the Day is properly constructed.
// Returns ErrDayIsNotConstructed for the zero value.
func (d Day) Validate() error {
	if d.t.IsZero() {
		return ErrDayIsNotConstructed
	}
	return nil
}
