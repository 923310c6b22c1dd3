package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")

	// ErrNoWorkingDays guards the degenerate month with zero weekdays, which
	// would otherwise divide by zero when deriving the hourly rate.
	ErrNoWorkingDays = errors.New("month has no working days")
)
