// utils/timeutil.go
package utils

import (
	"fmt"
	"time"
)

// Trip dates are calendar days, no time component.
const TripDateLayout = "2006-01-02"

// ParseTripDate parses a YYYY-MM-DD date string.
func ParseTripDate(s string) (time.Time, error) {
	t, err := time.Parse(TripDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ValidateTripWindow enforces start <= end. Same-day trips are allowed.
func ValidateTripWindow(start, end time.Time) error {
	if start.After(end) {
		return ErrInvalidTripWindow
	}
	return nil
}

// TripDayCount returns the number of itinerary days, inclusive of both ends.
func TripDayCount(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Format helpers
func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TripDateLayout)
}

func FormatTripRange(start, end time.Time) string {
	return fmt.Sprintf("%s to %s", FormatTripDate(start), FormatTripDate(end))
}

// FormatMonthYear renders a date as e.g. "February 2025", used when
// interpolating event queries.
func FormatMonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2006")
}
