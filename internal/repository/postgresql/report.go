package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/report"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetDailyAttendance implements report.ReportRepository.
func (r *reportRepository) GetDailyAttendance(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.employee_id, al.clock_in_time, al.clock_out_time, al.attendance_date,
			   al.notes, al.source, al.created_at, al.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM attendance_logs al
		JOIN employees e ON e.id = al.employee_id
		WHERE al.attendance_date = $1
		ORDER BY employee_name, al.clock_in_time
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", err)
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
			return nil, fmt.Errorf("failed to scan daily attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily attendance rows: %w", err)
	}

	return records, nil
}

// GetAttendanceInRange implements report.ReportRepository.
func (r *reportRepository) GetAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in_time, clock_out_time, attendance_date,
			   notes, source, created_at, updated_at
		FROM attendance_logs
		WHERE employee_id = $1
		  AND attendance_date BETWEEN $2 AND $3
		ORDER BY attendance_date, clock_in_time
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.ClockIn, &att.ClockOut, &att.AttendanceDate,
			&att.Notes, &att.Source, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance range row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance range rows: %w", err)
	}

	return records, nil
}

// GetLeaveRequestsOverlapping implements report.ReportRepository. Overlap,
// not containment: any request whose span touches the window is included.
func (r *reportRepository) GetLeaveRequestsOverlapping(ctx context.Context, filter report.LeaveReportFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := enrichedSelect + `
	WHERE lr.start_date <= $1
	  AND lr.end_date >= $2
	`

	args := []interface{}{filter.EndDate, filter.StartDate}
	argIndex := 3

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.LeaveTypeID != nil {
		query += fmt.Sprintf(" AND lr.leave_type_id = $%d", argIndex)
		args = append(args, *filter.LeaveTypeID)
		argIndex++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	query += " ORDER BY lr.start_date, employee_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave report: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		if err := scanEnriched(rows, &request); err != nil {
			return nil, fmt.Errorf("failed to scan leave report row: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave report rows: %w", err)
	}

	return requests, nil
}

// GetAbsentees implements report.ReportRepository. Any attendance record on
// the date counts as presence, open sessions included.
func (r *reportRepository) GetAbsentees(ctx context.Context, date time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, e.employee_code, e.department, e.email, e.job_title
		FROM employees e
		WHERE e.id NOT IN (
			SELECT al.employee_id FROM attendance_logs al WHERE al.attendance_date = $1
		)
		AND e.id NOT IN (
			SELECT lr.employee_id FROM leave_requests lr
			WHERE lr.status = $2
			  AND lr.start_date <= $1
			  AND lr.end_date >= $1
		)
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, date, leave.LeaveRequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query absentees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.EmployeeCode,
			&emp.Department, &emp.Email, &emp.JobTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absentee row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absentee rows: %w", err)
	}

	return employees, nil
}
