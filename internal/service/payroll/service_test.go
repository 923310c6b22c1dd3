package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/config"
	domain "github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/narrative"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql"
	"github.com/autopay-hq/autopay-backend-go/internal/repository/postgresql/postgresqltest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator lets tests script the narrative outcome.
type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Summarize(ctx context.Context, employeeName string, netPay, totalHours, overtimeHours decimal.Decimal) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type payrollEnv struct {
	svc            payslip.PayrollService
	employeeRepo   employee.EmployeeRepository
	attendanceRepo domain.AttendanceRepository
}

func setupPayroll(t *testing.T, generator narrative.Generator) payrollEnv {
	t.Helper()
	setup := postgresqltest.NewTestDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	payslipRepo := postgresql.NewPayslipRepository(setup.DB)
	svc := NewPayrollService(setup.DB, payslipRepo, attendanceRepo, employeeRepo, generator, config.GeminiConfig{Timeout: time.Second})
	return payrollEnv{svc: svc, employeeRepo: employeeRepo, attendanceRepo: attendanceRepo}
}

func seedPayrollEmployee(t *testing.T, repo employee.EmployeeRepository, id, name string, salary int64) {
	t.Helper()
	_, err := repo.Create(context.Background(), employee.Employee{
		ID:               id,
		Name:             name,
		Salary:           decimal.NewFromInt(salary),
		Role:             employee.RoleEmployee,
		RegistrationDate: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func seedWorkday(t *testing.T, repo domain.AttendanceRepository, employeeID string, day int, hours int) {
	t.Helper()
	date := time.Date(2025, time.February, day, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(9 * time.Hour)
	checkOut := checkIn.Add(time.Duration(hours) * time.Hour)
	_, err := repo.Upsert(context.Background(), employeeID, date, checkIn, &checkOut)
	require.NoError(t, err)
}

func TestGenerate_OvertimeFigures(t *testing.T) {
	env := setupPayroll(t, nil)
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)

	// 17 ten-hour days in a 160-hour month leaves 10 hours of overtime.
	for day := 1; day <= 17; day++ {
		seedWorkday(t, env.attendanceRepo, "EMP-00001", day, 10)
	}

	slip, err := env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)

	assert.Equal(t, "EMP-00001", slip.EmployeeID)
	assert.Equal(t, "2025-02", slip.Month)
	assert.Equal(t, 2025, slip.Year)
	assert.True(t, slip.MonthlySalary.Equal(decimal.NewFromInt(4400)), "monthlySalary = %s", slip.MonthlySalary)
	assert.True(t, slip.HourlyRate.Equal(decimal.RequireFromString("27.5")), "hourlyRate = %s", slip.HourlyRate)
	assert.True(t, slip.TotalHours.Equal(decimal.NewFromInt(170)), "totalHours = %s", slip.TotalHours)
	assert.True(t, slip.OvertimeHours.Equal(decimal.NewFromInt(10)), "overtimeHours = %s", slip.OvertimeHours)
	assert.True(t, slip.RegularPay.Equal(decimal.NewFromInt(4400)), "regularPay = %s", slip.RegularPay)
	assert.True(t, slip.OvertimePay.Equal(decimal.RequireFromString("412.5")), "overtimePay = %s", slip.OvertimePay)
	assert.True(t, slip.NetPayable.Equal(decimal.RequireFromString("4812.5")), "netPayable = %s", slip.NetPayable)

	// No generator configured, so the fixed placeholder is stored.
	assert.Equal(t, narrative.FallbackUnavailable, slip.Summary)
}

func TestGenerate_UsesGeneratorSummary(t *testing.T) {
	env := setupPayroll(t, &stubGenerator{text: "Great month, Alice!"})
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 3, 8)

	slip, err := env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)
	assert.Equal(t, "Great month, Alice!", slip.Summary)
}

func TestGenerate_GeneratorFailureFallsBack(t *testing.T) {
	env := setupPayroll(t, &stubGenerator{err: fmt.Errorf("quota exceeded")})
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 3, 8)

	// The payslip still lands; only the summary degrades.
	slip, err := env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)
	assert.Equal(t, narrative.FallbackFailed, slip.Summary)
	assert.True(t, slip.TotalHours.Equal(decimal.NewFromInt(8)))
}

func TestGenerate_RegenerationReplacesRow(t *testing.T) {
	env := setupPayroll(t, nil)
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 3, 8)

	first, err := env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)

	// More attendance arrives, the month is regenerated.
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 4, 8)
	second, err := env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)

	assert.True(t, second.TotalHours.Equal(decimal.NewFromInt(16)), "totalHours = %s", second.TotalHours)
	assert.NotEqual(t, first.ID, second.ID)

	// Exactly one payslip survives for the month.
	slips, err := env.svc.ListForEmployee(ctx, "EMP-00001")
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, second.ID, slips[0].ID)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	env := setupPayroll(t, nil)

	_, err := env.svc.Generate(context.Background(), "EMP-09999", feb2025)
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}

func TestListForEmployee_SortedByMonthDescending(t *testing.T) {
	env := setupPayroll(t, nil)
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 3, 8)

	_, err := env.svc.Generate(ctx, "EMP-00001", time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = env.svc.Generate(ctx, "EMP-00001", feb2025)
	require.NoError(t, err)

	slips, err := env.svc.ListForEmployee(ctx, "EMP-00001")
	require.NoError(t, err)
	require.Len(t, slips, 2)
	assert.Equal(t, "2025-02", slips[0].Month)
	assert.Equal(t, "2025-01", slips[1].Month)
}

func TestRefreshAll(t *testing.T) {
	env := setupPayroll(t, nil)
	ctx := context.Background()
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00001", "Alice", 4400)
	seedPayrollEmployee(t, env.employeeRepo, "EMP-00002", "Bob", 5000)
	seedWorkday(t, env.attendanceRepo, "EMP-00001", 3, 8)

	require.NoError(t, env.svc.RefreshAll(ctx, feb2025))

	for _, id := range []string{"EMP-00001", "EMP-00002"} {
		slips, err := env.svc.ListForEmployee(ctx, id)
		require.NoError(t, err)
		require.Len(t, slips, 1, "employee %s", id)
		assert.Equal(t, "2025-02", slips[0].Month)
	}

	// Refreshing again keeps a single payslip per employee and month.
	require.NoError(t, env.svc.RefreshAll(ctx, feb2025))
	slips, err := env.svc.ListForEmployee(ctx, "EMP-00001")
	require.NoError(t, err)
	assert.Len(t, slips, 1)
}
