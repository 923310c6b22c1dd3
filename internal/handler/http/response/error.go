package response

import (
	"errors"
	"net/http"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/payslip"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Role must be Admin, Clerk or Employee", nil)
	case errors.Is(err, employee.ErrDirectoryNotEmpty):
		Conflict(w, "An administrator account already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyRecorded):
		Conflict(w, "Attendance for today is already fully recorded")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrNoWorkingDays):
		BadRequest(w, "Month has no working days", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
