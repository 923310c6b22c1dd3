package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the persisted result of one payroll computation. At most one
// exists per (employee, month); regenerating replaces the previous one.
type Payslip struct {
	ID            string
	EmployeeID    string
	Month         string // YYYY-MM
	Year          int
	MonthlySalary decimal.Decimal
	HourlyRate    decimal.Decimal
	TotalHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal
	NetPayable    decimal.Decimal // gross: no deductions are modeled
	GeneratedAt   time.Time
	Summary       string
}

// OvertimeMultiplier is the fixed premium applied to overtime hours.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// HoursPerWorkingDay is the standard working day length used to derive the
// monthly hour budget. Holidays are not modeled.
const HoursPerWorkingDay = 8
