package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/domain/attendance"
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2::date
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record yet today
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, created_at, updated_at
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.created_at, a.updated_at,
			   e.name AS employee_name
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1::date
		ORDER BY a.check_in ASC
	`

	rows, err := q.Query(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert implements attendance.AttendanceRepository.
//
// The conflict target (employee_id, date) makes this the single point of
// coordination for concurrent clock events: when two requests both observe
// an absent day and insert, the loser of the race becomes an update. The
// update never touches check_in, and COALESCE keeps an already-set
// check_out, so the row only ever moves forward through the state machine.
func (a *attendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, checkIn time.Time, checkOut *time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, check_in, check_out)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			check_out = COALESCE(attendance.check_out, EXCLUDED.check_out),
			updated_at = NOW()
		RETURNING id, employee_id, date, check_in, check_out, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02"), checkIn, checkOut).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}
