package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance sessions
type AttendanceService interface {
	// ClockIn records a new attendance session. Multiple records per employee
	// per day are allowed; an earlier clock-out may be followed by a new
	// clock-in on the same date.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// GetOpenSession retrieves the employee's current open session
	GetOpenSession(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// ClockOut closes the employee's open session
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// ListRecords retrieves attendance records with optional filters
	ListRecords(ctx context.Context, req ListRecordsRequest) ([]AttendanceResponse, error)
}
