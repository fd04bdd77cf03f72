package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseTripDate(s)
	require.NoError(t, err)
	return d
}

func TestParseTripDate(t *testing.T) {
	d, err := ParseTripDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())

	for _, bad := range []string{"", "03/10/2025", "2025-3-10", "yesterday"} {
		_, err := ParseTripDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestValidateTripWindow(t *testing.T) {
	assert.ErrorIs(t, ValidateTripWindow(date(t, "2025-03-10"), date(t, "2025-03-05")), ErrInvalidTripWindow)
	assert.NoError(t, ValidateTripWindow(date(t, "2025-03-05"), date(t, "2025-03-10")))
	assert.NoError(t, ValidateTripWindow(date(t, "2025-03-05"), date(t, "2025-03-05")))
}

func TestTripDayCount(t *testing.T) {
	assert.Equal(t, 3, TripDayCount(date(t, "2025-03-01"), date(t, "2025-03-03")))
	assert.Equal(t, 1, TripDayCount(date(t, "2025-03-01"), date(t, "2025-03-01")))
	assert.Equal(t, 0, TripDayCount(date(t, "2025-03-03"), date(t, "2025-03-01")))
}

func TestFormatHelpers(t *testing.T) {
	start := date(t, "2025-02-10")
	end := date(t, "2025-02-14")

	assert.Equal(t, "2025-02-10", FormatTripDate(start))
	assert.Equal(t, "2025-02-10 to 2025-02-14", FormatTripRange(start, end))
	assert.Equal(t, "February 2025", FormatMonthYear(start))
}
