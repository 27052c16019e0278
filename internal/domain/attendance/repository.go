package attendance

import (
	"context"
	"time"
)

// RecordFilter narrows ListRecords. Date bounds are inclusive and compared
// as calendar dates, not timestamps.
type RecordFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

type AttendanceRepository interface {
	// Create inserts a new attendance record and returns it with its
	// generated ID.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOpenSession returns the most recent record without a clock-out for
	// the employee, or ErrNoOpenSession.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// GetOpenSessionForUpdate is GetOpenSession with a row lock. Must run
	// inside a transaction.
	GetOpenSessionForUpdate(ctx context.Context, employeeID string) (Attendance, error)

	// CloseSession sets the clock-out time and replaces the notes on a record.
	CloseSession(ctx context.Context, id string, clockOut time.Time, notes *string) (Attendance, error)

	// List returns records matching the filter, ordered by attendance_date
	// descending then clock_in_time descending.
	List(ctx context.Context, filter RecordFilter) ([]Attendance, error)
}
