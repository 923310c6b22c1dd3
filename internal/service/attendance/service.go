package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/domain/employee"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/utils"
)

type attendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RecordClockEvent implements attendance.AttendanceService.
//
// State machine per (employee, date):
//
//	Absent   -> insert with check_in = now        -> "check_in"
//	Open     -> set check_out = now               -> "check_out"
//	Complete -> ErrAlreadyRecorded, no mutation
//
// The rejection happens before any write. The write itself is a keyed
// upsert, so even if two requests race past the read both land on one row.
func (s *attendanceServiceImpl) RecordClockEvent(ctx context.Context, employeeID string, now time.Time) (attendance.ClockEventResponse, error) {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))
	req := attendance.ClockEventRequest{EmployeeID: employeeID}
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	today := utils.DateOnly(now.UTC())

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	var (
		action   attendance.ClockAction
		checkIn  time.Time
		checkOut *time.Time
	)
	switch {
	case existing == nil:
		action = attendance.ActionCheckIn
		checkIn = now.UTC()
	case existing.Open():
		action = attendance.ActionCheckOut
		checkIn = existing.CheckIn
		out := now.UTC()
		checkOut = &out
	default:
		return attendance.ClockEventResponse{}, attendance.ErrAlreadyRecorded
	}

	record, err := s.attendanceRepo.Upsert(ctx, employeeID, today, checkIn, checkOut)
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	// If a concurrent event won the race the upsert returns the merged row;
	// report what actually happened rather than what this call intended.
	if action == attendance.ActionCheckIn && record.Complete() {
		action = attendance.ActionCheckOut
	}

	return attendance.ClockEventResponse{
		Action:     action,
		Attendance: attendance.ToResponse(record),
	}, nil
}

// ListForEmployee implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(records), nil
}

// ListForDate implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListForDate(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, utils.DateOnly(date))
	if err != nil {
		return nil, err
	}

	return attendance.ToResponseList(records), nil
}
