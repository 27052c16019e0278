package leave

import (
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE TYPE DTOs
// ========================================

type CreateLeaveTypeRequest struct {
	Name           string   `json:"name"`
	DefaultBalance *float64 `json:"default_balance,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	DefaultBalance *float64 `json:"default_balance"`
}

// ========================================
// LEAVE BALANCE DTOs
// ========================================

type BalanceQuery struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
}

func (q *BalanceQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(q.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if q.Year < 1900 || q.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyDeltaRequest mutates the ledger. IsInitial makes Amount an absolute
// set; otherwise Amount is added to the current balance (the leave type
// default is folded in once if no row exists yet).
type ApplyDeltaRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	Year        int     `json:"year"`
	Amount      float64 `json:"amount"`
	IsInitial   bool    `json:"is_initial"`
}

func (r *ApplyDeltaRequest) Validate() error {
	q := BalanceQuery{EmployeeID: r.EmployeeID, LeaveTypeID: r.LeaveTypeID, Year: r.Year}
	return q.Validate()
}

type BalanceResponse struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	Year        int     `json:"year"`
	Balance     float64 `json:"balance"`
}

// ========================================
// LEAVE REQUEST DTOs
// ========================================

type ApplyLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // "YYYY-MM-DD"
	EndDate     string `json:"end_date"`   // "YYYY-MM-DD"
	Reason      string `json:"reason"`
}

// Validate checks presence and calendar-date format only. Whether
// start_date <= end_date is enforced is a service-level policy.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
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

// Dates returns the parsed range. Validate must have passed first.
func (r *ApplyLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.ParseDate(r.StartDate)
	end, _ := validator.ParseDate(r.EndDate)
	return start, end
}

type ListLeaveRequestsRequest struct {
	EmployeeID *string
	Status     *string
}

func (r *ListLeaveRequestsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && *r.Status != "" {
		valid := []string{
			string(LeaveRequestStatusPending),
			string(LeaveRequestStatusApproved),
			string(LeaveRequestStatusRejected),
			string(LeaveRequestStatusCancelled),
		}
		if !validator.IsInSlice(*r.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of Pending, Approved, Rejected, Cancelled",
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
func (r *ListLeaveRequestsRequest) Filter() LeaveRequestFilter {
	filter := LeaveRequestFilter{EmployeeID: r.EmployeeID}
	if r.Status != nil && *r.Status != "" {
		status := LeaveRequestStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

type LeaveRequestResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	EmployeeCode     *string `json:"employee_code,omitempty"`
	LeaveTypeID      string  `json:"leave_type_id"`
	LeaveTypeName    *string `json:"leave_type_name,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	ApproverID       *string `json:"approver_id"`
	ApproverUsername *string `json:"approver_username"`
	RequestDate      string  `json:"request_date"`
}
