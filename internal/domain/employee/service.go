package employee

import "context"

// EmployeeService defines the directory operations exposed to handlers.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// CreateFirstAdmin bootstraps the primary administrator. Only allowed
	// while the directory is empty; the account is always an Admin.
	CreateFirstAdmin(ctx context.Context, req CreateFirstAdminRequest) (EmployeeResponse, error)
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
