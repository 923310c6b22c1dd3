package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type employeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponseList(employees), nil
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, normalizeID(id))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements employee.EmployeeService.
// The id is assigned inside the transaction: the last id for the role prefix
// is read under a per-prefix lock, incremented, and inserted, so two
// concurrent creates for the same role cannot produce duplicate sequence
// numbers.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := employee.Role(req.Role)

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		lastID, err := s.employeeRepo.GetLastIDByPrefix(txCtx, role.IDPrefix())
		if err != nil {
			return err
		}

		nextID, err := nextSequenceID(role.IDPrefix(), lastID)
		if err != nil {
			return err
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			ID:               nextID,
			Name:             strings.TrimSpace(req.Name),
			Salary:           req.Salary,
			Role:             role,
			RegistrationDate: time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// CreateFirstAdmin implements employee.EmployeeService.
// The empty-directory check runs inside the same transaction as the insert
// so two racing setup requests cannot both become the first admin.
func (s *employeeServiceImpl) CreateFirstAdmin(ctx context.Context, req employee.CreateFirstAdminRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		count, err := s.employeeRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return employee.ErrDirectoryNotEmpty
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			ID:               employee.RoleAdmin.IDPrefix() + "-00001",
			Name:             strings.TrimSpace(req.Name),
			Salary:           req.Salary,
			Role:             employee.RoleAdmin,
			RegistrationDate: time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// UpdateSalary implements employee.EmployeeService.
func (s *employeeServiceImpl) UpdateSalary(ctx context.Context, req employee.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateSalary(ctx, normalizeID(req.ID), req.Salary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, normalizeID(id))
}

// nextSequenceID advances the per-prefix sequence: ADM-00001, ADM-00002, ...
// Sequences are independent per role prefix and ids are never reused.
func nextSequenceID(prefix string, lastID string) (string, error) {
	next := 1
	if lastID != "" {
		parts := strings.SplitN(lastID, "-", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed employee id %q", lastID)
		}
		seq, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Errorf("malformed employee id %q: %w", lastID, err)
		}
		next = seq + 1
	}
	return fmt.Sprintf("%s-%05d", prefix, next), nil
}

// Ids are stored uppercase; lookups accept any case the way the original
// login screen did.
func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
