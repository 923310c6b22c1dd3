package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves a single employee; returns ErrEmployeeNotFound when missing
	GetByID(ctx context.Context, id string) (Employee, error)

	// Count returns the number of registered employees
	Count(ctx context.Context) (int64, error)

	// GetLastIDByPrefix returns the highest assigned id for a role prefix,
	// locking it for the duration of the surrounding transaction so two
	// concurrent creates cannot mint the same sequence number.
	// Returns "" when no id with that prefix exists yet.
	GetLastIDByPrefix(ctx context.Context, prefix string) (string, error)

	// Create inserts a new employee with a pre-assigned id
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// UpdateSalary updates the monthly salary; returns ErrEmployeeNotFound when missing
	UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) (Employee, error)

	// Delete removes the employee. Attendance and payslips cascade at the
	// storage layer.
	Delete(ctx context.Context, id string) error
}
