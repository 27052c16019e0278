package attendance

import (
	"time"
)

// Attendance is one clock-in/clock-out session. A record with a nil ClockOut
// is an open session; at most one open session may exist per employee.
type Attendance struct {
	ID             string
	EmployeeID     string
	ClockIn        time.Time
	ClockOut       *time.Time
	AttendanceDate time.Time
	Notes          *string
	Source         string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}

// IsOpen reports whether the session has not been clocked out yet.
func (a Attendance) IsOpen() bool {
	return a.ClockOut == nil
}
