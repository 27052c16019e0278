package report

import (
	"context"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
)

// LeaveReportFilter selects leave requests whose span intersects the query
// window. Overlap, not containment: start_date <= EndDate AND
// end_date >= StartDate.
type LeaveReportFilter struct {
	StartDate   time.Time
	EndDate     time.Time
	EmployeeID  *string
	LeaveTypeID *string
	Status      *leave.LeaveRequestStatus
}

// ReportRepository defines the read-only queries behind the reports.
type ReportRepository interface {
	// GetDailyAttendance returns enriched attendance records for a calendar
	// date, ordered by employee name then clock-in time.
	GetDailyAttendance(ctx context.Context, date time.Time) ([]attendance.Attendance, error)

	// GetAttendanceInRange returns one employee's records whose
	// attendance_date falls inside [start, end].
	GetAttendanceInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)

	// GetLeaveRequestsOverlapping returns enriched requests matching the
	// filter, ordered by start_date then employee name.
	GetLeaveRequestsOverlapping(ctx context.Context, filter LeaveReportFilter) ([]leave.LeaveRequest, error)

	// GetAbsentees returns employees with no attendance record on the date
	// and no approved leave spanning it, ordered by name.
	GetAbsentees(ctx context.Context, date time.Time) ([]employee.Employee, error)
}
