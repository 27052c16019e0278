package leave

import (
	"time"
)

// LeaveType entity. Created by configuration; the ledger treats it as
// read-only except for the default-balance fallback.
type LeaveType struct {
	ID             string
	Name           string
	DefaultBalance *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LeaveBalance is the running balance per (employee, leave type, year).
// Rows are created lazily on first mutation; the balance may go negative,
// overdraft policy is the caller's decision.
type LeaveBalance struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	Balance     float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
	// LeaveRequestStatusCancelled is anticipated by the storage schema; the
	// workflow defines no transition into it yet.
	LeaveRequestStatusCancelled LeaveRequestStatus = "Cancelled"
)

// IsTerminal reports whether the workflow defines no further transition
// from the status.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity. ApproverID is set exactly when the status leaves
// Pending. Balance deduction is a separate, caller-driven ledger call, never
// a side effect of approval.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	Status      LeaveRequestStatus
	ApproverID  *string
	RequestDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName     *string
	EmployeeCode     *string
	LeaveTypeName    *string
	ApproverUsername *string
}
