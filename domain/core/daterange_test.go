package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeBoundariesInclusive(t *testing.T) {
	r := NewDateRange(day(2025, 1, 6), day(2025, 1, 10))

	assert.True(t, r.Contains(day(2025, 1, 6)), "start day is inside")
	assert.True(t, r.Contains(day(2025, 1, 10)), "end day is inside")
	assert.False(t, r.Contains(day(2025, 1, 5)), "one day before start is outside")
	assert.False(t, r.Contains(day(2025, 1, 11)), "one day after end is outside")
}

func TestEmptyDateRangeMatchesNothing(t *testing.T) {
	r := NewDateRange(day(2025, 1, 10), day(2025, 1, 6))

	assert.True(t, r.IsEmpty())
	assert.False(t, r.Contains(day(2025, 1, 8)))
	assert.False(t, r.Contains(day(2025, 1, 10)))
}

func TestContainsIgnoresTimeOfDay(t *testing.T) {
	r := NewDateRange(day(2025, 1, 6), day(2025, 1, 6))
	assert.True(t, r.Contains(time.Date(2025, 1, 6, 23, 59, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"06/01/2025", day(2025, 1, 6)},
		{"2025-01-06", day(2025, 1, 6)},
		{"06/01/25", day(2025, 1, 6)},
		{"  06/01/2025  ", day(2025, 1, 6)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.raw)
		require.NoError(t, err, "input %q", tt.raw)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "13/13/2025"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", raw)
	}
}
