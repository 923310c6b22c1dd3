package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February)) // leap year
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestWorkingDaysInMonth(t *testing.T) {
	// February 2025 starts on a Saturday: 28 days, 8 weekend days.
	assert.Equal(t, 20, WorkingDaysInMonth(2025, time.February))
	// August 2025 starts on a Friday: 31 days, 10 weekend days.
	assert.Equal(t, 21, WorkingDaysInMonth(2025, time.August))
	// February 2024 (leap) starts on a Thursday.
	assert.Equal(t, 21, WorkingDaysInMonth(2024, time.February))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-02", MonthKey(time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSameMonth(t *testing.T) {
	ref := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameMonth(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), ref))
	assert.True(t, SameMonth(time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC), ref))
	assert.False(t, SameMonth(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), ref))
	assert.False(t, SameMonth(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), ref))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, time.February, 15, 18, 42, 7, 123, time.UTC)
	got := DateOnly(in)

	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
