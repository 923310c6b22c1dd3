package utils

import "time"

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WorkingDaysInMonth counts the days in the month that fall on a weekday.
// Fixed five-day week; holidays are not modeled.
func WorkingDaysInMonth(year int, month time.Month) int {
	days := DaysInMonth(year, month)
	working := 0
	for day := 1; day <= days; day++ {
		wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			working++
		}
	}
	return working
}

// MonthKey formats a time as the YYYY-MM key used for payslips.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// SameMonth reports whether a date falls in the calendar month of ref.
func SameMonth(date, ref time.Time) bool {
	return date.Year() == ref.Year() && date.Month() == ref.Month()
}

// DateOnly truncates a time to midnight UTC, the form attendance is keyed by.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
