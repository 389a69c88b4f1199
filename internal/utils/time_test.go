package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestHoursBetween(t *testing.T) {
	start := datetime(2026, 1, 15, 10, 0)

	assert.Equal(t, 2.0, HoursBetween(start, datetime(2026, 1, 15, 12, 0)))
	assert.Equal(t, 2.5, HoursBetween(start, datetime(2026, 1, 15, 12, 30)))
	assert.Equal(t, 0.0, HoursBetween(start, start))

	// negative when end precedes start; rejection happens upstream
	assert.Equal(t, -1.0, HoursBetween(start, datetime(2026, 1, 15, 9, 0)))
}

func TestOverlaps(t *testing.T) {
	aStart, aEnd := datetime(2026, 1, 15, 10, 0), datetime(2026, 1, 15, 14, 0)

	// fully before / fully after
	assert.False(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 8, 0), datetime(2026, 1, 15, 9, 0)))
	assert.False(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 15, 0), datetime(2026, 1, 15, 16, 0)))

	// touching endpoints are not overlaps
	assert.False(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 8, 0), aStart))
	assert.False(t, Overlaps(aStart, aEnd, aEnd, datetime(2026, 1, 15, 16, 0)))

	// partial and contained
	assert.True(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 12, 0), datetime(2026, 1, 15, 16, 0)))
	assert.True(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 11, 0), datetime(2026, 1, 15, 12, 0)))
	assert.True(t, Overlaps(aStart, aEnd, datetime(2026, 1, 15, 9, 0), datetime(2026, 1, 15, 15, 0)))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	cases := [][4]time.Time{
		{datetime(2026, 1, 15, 10, 0), datetime(2026, 1, 15, 14, 0), datetime(2026, 1, 15, 12, 0), datetime(2026, 1, 15, 16, 0)},
		{datetime(2026, 1, 15, 10, 0), datetime(2026, 1, 15, 14, 0), datetime(2026, 1, 15, 14, 0), datetime(2026, 1, 15, 16, 0)},
		{datetime(2026, 1, 15, 10, 0), datetime(2026, 1, 15, 11, 0), datetime(2026, 1, 15, 12, 0), datetime(2026, 1, 15, 13, 0)},
	}
	for _, tc := range cases {
		assert.Equal(t,
			Overlaps(tc[0], tc[1], tc[2], tc[3]),
			Overlaps(tc[2], tc[3], tc[0], tc[1]))
	}
}
