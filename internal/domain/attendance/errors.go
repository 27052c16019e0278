package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoOpenSession         = errors.New("no open attendance session for employee")
	ErrClockOutBeforeClockIn = errors.New("clock-out time cannot be before clock-in time")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
)
