package attendance

import (
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/pkg/validator"
)

type ClockEventRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *ClockEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "must look like EMP-00001"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     *string `json:"checkOut,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
}

// ClockEventResponse carries the resulting record plus which transition
// happened, so callers can phrase their notification.
type ClockEventResponse struct {
	Action     ClockAction        `json:"action"`
	Attendance AttendanceResponse `json:"attendance"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn.UTC().Format(time.RFC3339),
		EmployeeName: a.EmployeeName,
	}
	if a.CheckOut != nil {
		out := a.CheckOut.UTC().Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}

func ToResponseList(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}
