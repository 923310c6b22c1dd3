package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Clock implements AttendanceHandler - one clock event for today.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock event request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordClockEvent(r.Context(), req.EmployeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Clocked in for the day"
	if result.Action == attendance.ActionCheckOut {
		message = "Clocked out; hours recorded"
	}

	response.SuccessWithMessage(w, message, result)
}

// ListForEmployee implements AttendanceHandler
func (h *attendanceHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	records, err := h.attendanceService.ListForEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListToday implements AttendanceHandler - today's records across the
// directory, for the admin overview.
func (h *attendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListForDate(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
