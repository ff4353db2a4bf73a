package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// Dates are "YYYY-MM-DD" calendar days with no timezone, clock values are
// wall-clock "HH:MM" strings. Interval arithmetic happens in minutes since
// midnight so that half-open range comparisons stay integer-only.

var (
	ErrBadClock = errors.New("invalid clock value, want HH:MM")
	ErrBadDate  = errors.New("invalid date value, want YYYY-MM-DD")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ValidateDate checks that s is a well-formed calendar day.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return nil
}

// FormatDate renders t as a calendar-day string.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
