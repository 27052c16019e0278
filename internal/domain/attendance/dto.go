package attendance

import (
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	At         *string `json:"at,omitempty"` // "YYYY-MM-DD HH:MM:SS", defaults to now
	Notes      *string `json:"notes,omitempty"`
	Source     string  `json:"source"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.At != nil && *r.At != "" {
		if _, ok := validator.IsValidDateTime(*r.At); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be in YYYY-MM-DD HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Time resolves the clock-in instant, defaulting to now.
func (r *ClockInRequest) Time(now time.Time) time.Time {
	if r.At == nil || *r.At == "" {
		return now
	}
	t, _ := validator.ParseDateTime(*r.At)
	return t
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	At         *string `json:"at,omitempty"` // "YYYY-MM-DD HH:MM:SS", defaults to now
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.At != nil && *r.At != "" {
		if _, ok := validator.IsValidDateTime(*r.At); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be in YYYY-MM-DD HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Time resolves the clock-out instant, defaulting to now.
func (r *ClockOutRequest) Time(now time.Time) time.Time {
	if r.At == nil || *r.At == "" {
		return now
	}
	t, _ := validator.ParseDateTime(*r.At)
	return t
}

type ListRecordsRequest struct {
	EmployeeID *string
	StartDate  *string // "YYYY-MM-DD"
	EndDate    *string // "YYYY-MM-DD"
}

func (r *ListRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter converts the request into a repository filter. Validate must have
// passed first.
func (r *ListRecordsRequest) Filter() RecordFilter {
	filter := RecordFilter{EmployeeID: r.EmployeeID}
	if r.StartDate != nil && *r.StartDate != "" {
		start, _ := validator.ParseDate(*r.StartDate)
		filter.StartDate = &start
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, _ := validator.ParseDate(*r.EndDate)
		filter.EndDate = &end
	}
	return filter
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	ClockInTime    string  `json:"clock_in_time"`
	ClockOutTime   *string `json:"clock_out_time"`
	AttendanceDate string  `json:"attendance_date"`
	Notes          *string `json:"notes"`
	Source         string  `json:"source"`
}
