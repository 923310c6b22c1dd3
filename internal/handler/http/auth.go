package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Setup(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	employeeService   employee.EmployeeService
	attendanceService attendance.AttendanceService
}

func NewAuthHandler(employeeService employee.EmployeeService, attendanceService attendance.AttendanceService) AuthHandler {
	return &authHandlerImpl{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

type loginRequest struct {
	ID string `json:"id"`
}

type loginResponse struct {
	Employee   employee.EmployeeResponse      `json:"employee"`
	ClockEvent *attendance.ClockEventResponse `json:"clockEvent,omitempty"`
	Notice     string                         `json:"notice,omitempty"`
}

// Login implements AuthHandler. The login is an id lookup; for employees it
// doubles as the clock terminal. A fully recorded day is a notice, not a
// failed login.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Get(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := loginResponse{Employee: emp}

	// Admins and clerks logging in is not a clock event; only the Employee
	// role works against the attendance ledger.
	if emp.Role == string(employee.RoleEmployee) {
		event, err := h.attendanceService.RecordClockEvent(r.Context(), emp.ID, time.Now().UTC())
		switch {
		case errors.Is(err, attendance.ErrAlreadyRecorded):
			resp.Notice = "Attendance for today is already fully recorded."
		case err != nil:
			response.HandleError(w, err)
			return
		case event.Action == attendance.ActionCheckIn:
			resp.ClockEvent = &event
			resp.Notice = "You have been successfully clocked in for the day."
		default:
			resp.ClockEvent = &event
			resp.Notice = "You have been successfully clocked out. Your hours are recorded."
		}
	}

	response.Success(w, resp)
}

// Setup implements AuthHandler - bootstraps the first administrator account.
func (h *authHandlerImpl) Setup(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateFirstAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode setup request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateFirstAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Administrator account created", created)
}
