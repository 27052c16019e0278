package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new PostgreSQL attendance repository
func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, clock_in_time, clock_out_time, attendance_date, notes, source
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.ClockIn,
		att.ClockOut,
		att.AttendanceDate,
		att.Notes,
		att.Source,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return a.getOpenSession(ctx, employeeID, false)
}

// GetOpenSessionForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetOpenSessionForUpdate(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	return a.getOpenSession(ctx, employeeID, true)
}

func (a *attendanceRepository) getOpenSession(ctx context.Context, employeeID string, forUpdate bool) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, clock_in_time, clock_out_time, attendance_date,
			   notes, source, created_at, updated_at
		FROM attendance_logs
		WHERE employee_id = $1
		  AND clock_out_time IS NULL
		ORDER BY clock_in_time DESC
		LIMIT 1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&att.ID, &att.EmployeeID, &att.ClockIn, &att.ClockOut, &att.AttendanceDate,
		&att.Notes, &att.Source, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNoOpenSession
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// CloseSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseSession(ctx context.Context, id string, clockOut time.Time, notes *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_logs
		SET clock_out_time = $2,
			notes = $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, clock_in_time, clock_out_time, attendance_date,
				  notes, source, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, clockOut, notes).Scan(
		&att.ID, &att.EmployeeID, &att.ClockIn, &att.ClockOut, &att.AttendanceDate,
		&att.Notes, &att.Source, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close session: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT al.id, al.employee_id, al.clock_in_time, al.clock_out_time, al.attendance_date,
			   al.notes, al.source, al.created_at, al.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM attendance_logs al
		JOIN employees e ON e.id = al.employee_id
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND al.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND al.attendance_date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND al.attendance_date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query += " ORDER BY al.attendance_date DESC, al.clock_in_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.ClockIn, &att.ClockOut, &att.AttendanceDate,
			&att.Notes, &att.Source, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
