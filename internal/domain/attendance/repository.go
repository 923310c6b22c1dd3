package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	// Returns nil when the employee has not clocked in that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployee retrieves all records for an employee, oldest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByDate retrieves every employee's record for one day, with names
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// Upsert atomically inserts or updates the record keyed by
	// (employee_id, date). Check-in is never overwritten once set and an
	// existing check-out is preserved, so concurrent clock events for the
	// same key collapse into a single row.
	Upsert(ctx context.Context, employeeID string, date time.Time, checkIn time.Time, checkOut *time.Time) (Attendance, error)
}
