package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/config"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/narrative"
	"github.com/google/uuid"
)

type payrollServiceImpl struct {
	db             *database.DB
	payslipRepo    payslip.PayslipRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	generator      narrative.Generator
	geminiCfg      config.GeminiConfig
}

// NewPayrollService wires the calculator to storage and the optional
// narrative generator. generator may be nil when the feature is disabled.
func NewPayrollService(
	db *database.DB,
	payslipRepo payslip.PayslipRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	generator narrative.Generator,
	geminiCfg config.GeminiConfig,
) payslip.PayrollService {
	return &payrollServiceImpl{
		db:             db,
		payslipRepo:    payslipRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		generator:      generator,
		geminiCfg:      geminiCfg,
	}
}

// Generate implements payslip.PayrollService.
func (s *payrollServiceImpl) Generate(ctx context.Context, employeeID string, now time.Time) (payslip.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, normalizeID(employeeID))
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	calc, err := Compute(emp.Salary, records, now)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	summary := s.summarize(ctx, emp, calc)

	saved, err := s.payslipRepo.Upsert(ctx, payslip.Payslip{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		Month:         calc.Month,
		Year:          calc.Year,
		MonthlySalary: emp.Salary,
		HourlyRate:    calc.HourlyRate,
		TotalHours:    calc.TotalHours,
		OvertimeHours: calc.OvertimeHours,
		RegularPay:    calc.RegularPay,
		OvertimePay:   calc.OvertimePay,
		NetPayable:    calc.NetPayable,
		GeneratedAt:   time.Now().UTC(),
		Summary:       summary,
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return payslip.ToResponse(saved), nil
}

// ListForEmployee implements payslip.PayrollService.
func (s *payrollServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	employeeID = normalizeID(employeeID)
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return payslip.ToResponseList(payslips), nil
}

// RefreshAll implements payslip.PayrollService.
func (s *payrollServiceImpl) RefreshAll(ctx context.Context, now time.Time) error {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("payroll refresh: %w", err)
	}

	var failed int
	for _, emp := range employees {
		if _, err := s.Generate(ctx, emp.ID, now); err != nil {
			failed++
			slog.Error("payroll refresh failed for employee", "employee_id", emp.ID, "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("payroll refresh: %d of %d employees failed", failed, len(employees))
	}
	return nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// summarize funnels every narrative outcome into a string: generator absent,
// call failed, or success. The pay figures never depend on this collaborator.
func (s *payrollServiceImpl) summarize(ctx context.Context, emp employee.Employee, calc Computation) string {
	if s.generator == nil {
		return narrative.FallbackUnavailable
	}

	callCtx, cancel := narrative.Timeout(ctx, s.geminiCfg.Timeout)
	defer cancel()

	summary, err := s.generator.Summarize(callCtx, emp.Name, calc.NetPayable, calc.TotalHours, calc.OvertimeHours)
	if err != nil {
		slog.Warn("payslip summary generation failed", "employee_id", emp.ID, "error", err)
		return narrative.FallbackFailed
	}

	return summary
}
