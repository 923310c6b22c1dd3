package attendance

import "errors"

// Attendance domain errors
var (
	// ErrAlreadyRecorded is returned for a clock event on a day that already
	// has both check-in and check-out. Informational, never mutates state.
	ErrAlreadyRecorded = errors.New("attendance for today is already fully recorded")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
