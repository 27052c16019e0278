package leave

import (
	"context"
)

type LeaveTypeRepository interface {
	// Create inserts a leave type; ErrLeaveTypeExists on a duplicate name.
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)

	// GetByID returns a leave type or ErrLeaveTypeNotFound.
	GetByID(ctx context.Context, id string) (LeaveType, error)

	// List returns all leave types ordered by name.
	List(ctx context.Context) ([]LeaveType, error)
}

type LeaveBalanceRepository interface {
	// Get returns the balance row for the key triple, or ErrLeaveBalanceNotFound.
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)

	// GetForUpdate is Get with a row lock. Must run inside a transaction.
	GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalance, error)

	// Create inserts a new balance row for the key triple.
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)

	// UpdateBalance overwrites the stored balance of an existing row.
	UpdateBalance(ctx context.Context, id string, balance float64) error
}

// LeaveRequestFilter narrows List; nil fields match everything.
type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *LeaveRequestStatus
}

type LeaveRequestRepository interface {
	// Create inserts a new request and returns it with its generated ID.
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID returns an enriched request or ErrLeaveRequestNotFound.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate returns the bare request row with a row lock. Must run
	// inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus overwrites status and approver_id of a request.
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, approverID string) error

	// List returns enriched requests matching the filter, ordered by
	// request_date descending.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
}
