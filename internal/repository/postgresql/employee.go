package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, salary, role, registration_date
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Salary, &emp.Role, &emp.RegistrationDate); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, salary, role, registration_date
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.Name, &emp.Salary, &emp.Role, &emp.RegistrationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// GetLastIDByPrefix implements employee.EmployeeRepository.
// Must run inside a transaction. The advisory lock keyed on the prefix
// serializes concurrent creates for the same role, including the
// empty-table case where there is no row to lock, so sequence numbers
// are never minted twice.
func (e *employeeRepositoryImpl) GetLastIDByPrefix(ctx context.Context, prefix string) (string, error) {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, prefix); err != nil {
		return "", fmt.Errorf("failed to lock id sequence for prefix %s: %w", prefix, err)
	}

	query := `
		SELECT id
		FROM employees
		WHERE id LIKE $1
		ORDER BY id DESC
		LIMIT 1
	`

	var lastID string
	err := q.QueryRow(ctx, query, prefix+"-%").Scan(&lastID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last id for prefix %s: %w", prefix, err)
	}

	return lastID, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, salary, role, registration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, salary, role, registration_date
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Salary,
		newEmployee.Role,
		newEmployee.RegistrationDate,
	).Scan(&created.ID, &created.Name, &created.Salary, &created.Role, &created.RegistrationDate)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// UpdateSalary implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET salary = $1
		WHERE id = $2
		RETURNING id, name, salary, role, registration_date
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query, salary, id).Scan(
		&updated.ID, &updated.Name, &updated.Salary, &updated.Role, &updated.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update salary for employee %s: %w", id, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
// Attendance and payslips are removed by ON DELETE CASCADE on their
// employee_id foreign keys.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
