package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Open reports whether the day has a check-in but no check-out yet.
func (a Attendance) Open() bool {
	return a.CheckOut == nil
}

// Complete reports whether both clock events for the day are recorded.
func (a Attendance) Complete() bool {
	return a.CheckOut != nil
}

// WorkedDuration returns the time between check-in and check-out.
// An open record has worked zero time as far as payroll is concerned.
func (a Attendance) WorkedDuration() time.Duration {
	if a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(a.CheckIn)
}

// ClockAction tells callers which transition a clock event performed.
type ClockAction string

const (
	ActionCheckIn  ClockAction = "check_in"
	ActionCheckOut ClockAction = "check_out"
)
