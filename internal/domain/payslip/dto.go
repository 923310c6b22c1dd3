package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayslipResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	RegularPay    decimal.Decimal `json:"regularPay"`
	OvertimePay   decimal.Decimal `json:"overtimePay"`
	NetPayable    decimal.Decimal `json:"netPayable"`
	GeneratedDate string          `json:"generatedDate"`
	Summary       string          `json:"summary"`
}

func ToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		Month:         p.Month,
		Year:          p.Year,
		MonthlySalary: p.MonthlySalary,
		HourlyRate:    p.HourlyRate,
		TotalHours:    p.TotalHours,
		OvertimeHours: p.OvertimeHours,
		RegularPay:    p.RegularPay,
		OvertimePay:   p.OvertimePay,
		NetPayable:    p.NetPayable,
		GeneratedDate: p.GeneratedAt.UTC().Format(time.RFC3339),
		Summary:       p.Summary,
	}
}

func ToResponseList(payslips []Payslip) []PayslipResponse {
	out := make([]PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		out = append(out, ToResponse(p))
	}
	return out
}
