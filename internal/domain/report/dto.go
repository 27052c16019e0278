package report

import (
	"fmt"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY ATTENDANCE REPORT
// ========================================

type DailyAttendanceReportRequest struct {
	Date string `json:"date"`
}

func (r *DailyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyAttendanceReport struct {
	Date        string `json:"date"`
	GeneratedAt string `json:"generated_at"`

	Rows []DailyAttendanceRow `json:"rows"`
}

type DailyAttendanceRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	Notes        *string `json:"notes"`
	Source       string  `json:"source"`
	Duration     string  `json:"duration"`
}

// ========================================
// EMPLOYEE ATTENDANCE SUMMARY
// ========================================

type AttendanceSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *AttendanceSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceSummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`

	// TotalDaysPresent counts distinct attendance dates; a day with several
	// sessions counts once.
	TotalDaysPresent int `json:"total_days_present"`

	// TotalDuration sums closed sessions only, formatted as HH:MM:SS.
	TotalDuration string `json:"total_duration"`

	// Late/early tracking needs work schedules, which the directory does not
	// carry yet. Reported as zero until then.
	TotalLateMinutes       int `json:"total_late_minutes"`
	TotalEarlyLeaveMinutes int `json:"total_early_leave_minutes"`
}

// ========================================
// LEAVE REPORT
// ========================================

type LeaveReportRequest struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	LeaveTypeID *string `json:"leave_type_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r *LeaveReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveReport struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	Rows []LeaveReportRow `json:"rows"`
}

type LeaveReportRow struct {
	RequestID        string  `json:"request_id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeeCode     string  `json:"employee_code"`
	LeaveTypeName    string  `json:"leave_type_name"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	ApproverUsername *string `json:"approver_username"`
}

// ========================================
// ABSENTEE REPORT
// ========================================

type AbsenteeReportRequest struct {
	Date string `json:"date"`
}

func (r *AbsenteeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenteeReport struct {
	Date        string `json:"date"`
	GeneratedAt string `json:"generated_at"`

	Rows []AbsenteeRow `json:"rows"`
}

type AbsenteeRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	Department   *string `json:"department"`
}

// ========================================
// DURATION
// ========================================

const (
	DurationOpen    = "Open"
	DurationInvalid = "Invalid"
)

// FormatDuration renders a session duration. An open session reads "Open",
// a clock-out earlier than clock-in reads "Invalid", otherwise the delta as
// zero-padded HH:MM:SS. Hours above 24 are not wrapped.
func FormatDuration(clockIn time.Time, clockOut *time.Time) string {
	if clockOut == nil {
		return DurationOpen
	}
	if clockOut.Before(clockIn) {
		return DurationInvalid
	}
	return FormatElapsed(clockOut.Sub(clockIn))
}

// FormatElapsed renders a non-negative duration as zero-padded HH:MM:SS.
func FormatElapsed(d time.Duration) string {
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
