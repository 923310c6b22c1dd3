package payslip

import (
	"context"
	"time"
)

// PayrollService computes and persists payslips.
type PayrollService interface {
	// Generate computes the payslip for the calendar month of now and
	// upserts it, replacing any previous payslip for that employee+month.
	Generate(ctx context.Context, employeeID string, now time.Time) (PayslipResponse, error)

	// ListForEmployee returns the employee's payslips
	ListForEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)

	// RefreshAll regenerates the current-month payslip for every employee.
	// Used by the scheduled refresh job; safe to repeat since generation is
	// an idempotent upsert.
	RefreshAll(ctx context.Context, now time.Time) error
}
