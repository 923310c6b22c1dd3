package attendance

import (
	"context"
	"time"
)

// AttendanceService enforces the daily clock-in/clock-out state machine.
type AttendanceService interface {
	// RecordClockEvent applies one clock event for the employee on the given
	// day. Absent -> check-in, Open -> check-out, Complete -> ErrAlreadyRecorded.
	// The reference time is caller-supplied for testability.
	RecordClockEvent(ctx context.Context, employeeID string, now time.Time) (ClockEventResponse, error)

	// ListForEmployee returns the employee's full attendance history
	ListForEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// ListForDate returns every record for one day across all employees
	ListForDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
}
