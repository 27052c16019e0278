package report

import (
	"context"
)

// ReportService is the reporting engine. Everything here is read-only; the
// reports are pure functions of the stores plus the request parameters.
type ReportService interface {
	// DailyAttendanceReport lists every attendance record for a date with a
	// computed duration per row
	DailyAttendanceReport(ctx context.Context, req DailyAttendanceReportRequest) (DailyAttendanceReport, error)

	// EmployeeAttendanceSummary rolls up one employee's attendance over a
	// date range
	EmployeeAttendanceSummary(ctx context.Context, req AttendanceSummaryRequest) (AttendanceSummary, error)

	// LeaveReport lists leave requests overlapping a date range
	LeaveReport(ctx context.Context, req LeaveReportRequest) (LeaveReport, error)

	// AbsenteeReport lists employees with neither attendance nor approved
	// leave on a date
	AbsenteeReport(ctx context.Context, req AbsenteeReportRequest) (AbsenteeReport, error)
}
