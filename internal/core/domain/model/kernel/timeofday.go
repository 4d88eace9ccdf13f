package kernel

import (
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
)

// TimeOfDay is a value object representing the time-of-day component of a
// timestamp, with second precision and no date attached. It backs the
// business-hours filter: a 09:00-11:00 window matches that window on every
// day in a date range, not a single continuous interval.
//
// The zero value represents an absent bound and fails Validate; construct
// instances with TimeOfDayOf or ParseTimeOfDay.
type TimeOfDay struct {
	seconds int // seconds since midnight, 0..86399
	valid   bool
}

// ErrTimeOfDayIsNotConstructed indicates a zero-value TimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("TimeOfDay must be created via TimeOfDayOf or ParseTimeOfDay")

// TimeOfDayOf extracts the time-of-day component of the given instant.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		seconds: t.Hour()*3600 + t.Minute()*60 + t.Second(),
		valid:   true,
	}
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
// Returns a validation error for any other input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, errs.NewValueIsInvalidError(fmt.Sprintf("time of day %q", s))
}

// String renders the value as "15:04:05".
func (td TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", td.seconds/3600, td.seconds/60%60, td.seconds%60)
}

// Before reports whether this time of day falls strictly before other.
func (td TimeOfDay) Before(other TimeOfDay) bool {
	return td.seconds < other.seconds
}

// After reports whether this time of day falls strictly after other.
func (td TimeOfDay) After(other TimeOfDay) bool {
	return td.seconds > other.seconds
}

// IsEqual compares two TimeOfDay values.
func (td TimeOfDay) IsEqual(other TimeOfDay) bool {
	return td.seconds == other.seconds
}

// Validate checks the TimeOfDay is properly constructed.
func (td TimeOfDay) Validate() error {
	if !td.valid {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}
