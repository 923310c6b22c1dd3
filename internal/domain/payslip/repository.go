package payslip

import "context"

// PayslipRepository defines data access methods for payslips.
type PayslipRepository interface {
	// ListByEmployee retrieves all payslips for an employee, newest month first
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	// GetByEmployeeAndMonth retrieves one payslip; ErrPayslipNotFound when missing
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (Payslip, error)

	// Upsert inserts or fully replaces the payslip keyed by
	// (employee_id, month) in a single atomic statement.
	Upsert(ctx context.Context, p Payslip) (Payslip, error)
}
