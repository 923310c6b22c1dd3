package payroll

import (
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// Computation holds the derived pay figures for one employee-month. It is
// produced by Compute alone and carries no identity or narrative; the
// service layer wraps it into a persisted Payslip.
type Computation struct {
	Month                string
	Year                 int
	WorkingDays          int
	StandardMonthlyHours int
	TotalHours           decimal.Decimal
	OvertimeHours        decimal.Decimal
	RegularHours         decimal.Decimal
	HourlyRate           decimal.Decimal
	RegularPay           decimal.Decimal
	OvertimePay          decimal.Decimal
	NetPayable           decimal.Decimal
}

var (
	secondsPerHour = decimal.NewFromInt(3600)
	hoursPerDay    = decimal.NewFromInt(payslip.HoursPerWorkingDay)
)

// Compute derives the payslip figures for the calendar month of now from the
// employee's monthly salary and attendance records. Pure: same inputs yield
// the same output, so regenerating after an open day completes simply
// corrects the figures.
//
// Records outside the month are ignored; records without a check-out
// contribute zero hours. Returns ErrNoWorkingDays for the degenerate month
// with no weekdays rather than dividing by zero.
func Compute(monthlySalary decimal.Decimal, records []attendance.Attendance, now time.Time) (Computation, error) {
	year, month := now.UTC().Year(), now.UTC().Month()

	workingDays := utils.WorkingDaysInMonth(year, month)
	if workingDays == 0 {
		return Computation{}, payslip.ErrNoWorkingDays
	}

	var worked time.Duration
	for _, rec := range records {
		if !utils.SameMonth(rec.Date, now.UTC()) {
			continue
		}
		worked += rec.WorkedDuration()
	}

	// Second precision keeps the arithmetic exact in decimal space.
	totalHours := decimal.NewFromInt(int64(worked / time.Second)).Div(secondsPerHour)

	standardHours := hoursPerDay.Mul(decimal.NewFromInt(int64(workingDays)))
	hourlyRate := monthlySalary.Div(standardHours)

	overtimeHours := totalHours.Sub(standardHours)
	if overtimeHours.IsNegative() {
		overtimeHours = decimal.Zero
	}
	regularHours := totalHours.Sub(overtimeHours)

	regularPay := regularHours.Mul(hourlyRate)
	overtimePay := overtimeHours.Mul(hourlyRate).Mul(payslip.OvertimeMultiplier)

	return Computation{
		Month:                utils.MonthKey(now.UTC()),
		Year:                 year,
		WorkingDays:          workingDays,
		StandardMonthlyHours: workingDays * payslip.HoursPerWorkingDay,
		TotalHours:           totalHours,
		OvertimeHours:        overtimeHours,
		RegularHours:         regularHours,
		HourlyRate:           hourlyRate,
		RegularPay:           regularPay,
		OvertimePay:          overtimePay,
		// Named net for historical reasons: no deductions are modeled, so
		// this equals gross pay.
		NetPayable: regularPay.Add(overtimePay),
	}, nil
}
