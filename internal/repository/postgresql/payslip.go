package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

// ListByEmployee implements payslip.PayslipRepository.
func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, monthly_salary, hourly_rate,
			   total_hours, overtime_hours, regular_pay, overtime_pay,
			   net_payable, generated_at, summary
		FROM payslips
		WHERE employee_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var p payslip.Payslip
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.MonthlySalary, &p.HourlyRate,
			&p.TotalHours, &p.OvertimeHours, &p.RegularPay, &p.OvertimePay,
			&p.NetPayable, &p.GeneratedAt, &p.Summary,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}

// GetByEmployeeAndMonth implements payslip.PayslipRepository.
func (r *payslipRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, monthly_salary, hourly_rate,
			   total_hours, overtime_hours, regular_pay, overtime_pay,
			   net_payable, generated_at, summary
		FROM payslips
		WHERE employee_id = $1 AND month = $2
	`

	var p payslip.Payslip
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.MonthlySalary, &p.HourlyRate,
		&p.TotalHours, &p.OvertimeHours, &p.RegularPay, &p.OvertimePay,
		&p.NetPayable, &p.GeneratedAt, &p.Summary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

// Upsert implements payslip.PayslipRepository.
// A single INSERT ... ON CONFLICT keeps the replace atomic: concurrent
// regenerations for the same employee+month cannot interleave into a
// half-old, half-new row, and exactly one row survives.
func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, month, year, monthly_salary, hourly_rate,
			total_hours, overtime_hours, regular_pay, overtime_pay,
			net_payable, generated_at, summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			id = EXCLUDED.id,
			year = EXCLUDED.year,
			monthly_salary = EXCLUDED.monthly_salary,
			hourly_rate = EXCLUDED.hourly_rate,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			regular_pay = EXCLUDED.regular_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			net_payable = EXCLUDED.net_payable,
			generated_at = EXCLUDED.generated_at,
			summary = EXCLUDED.summary
		RETURNING id, employee_id, month, year, monthly_salary, hourly_rate,
			total_hours, overtime_hours, regular_pay, overtime_pay,
			net_payable, generated_at, summary
	`

	var saved payslip.Payslip
	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.Year, p.MonthlySalary, p.HourlyRate,
		p.TotalHours, p.OvertimeHours, p.RegularPay, p.OvertimePay,
		p.NetPayable, p.GeneratedAt, p.Summary,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Month, &saved.Year, &saved.MonthlySalary, &saved.HourlyRate,
		&saved.TotalHours, &saved.OvertimeHours, &saved.RegularPay, &saved.OvertimePay,
		&saved.NetPayable, &saved.GeneratedAt, &saved.Summary,
	)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return saved, nil
}
