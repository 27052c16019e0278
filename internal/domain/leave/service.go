package leave

import (
	"context"
)

// BalanceService is the leave-balance ledger plus leave-type configuration.
type BalanceService interface {
	// CreateLeaveType adds a leave type with an optional default balance
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)

	// ListLeaveTypes retrieves all configured leave types
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// GetBalance resolves the balance for (employee, leave type, year):
	// explicit row, else the leave type default, else zero. Never persists.
	GetBalance(ctx context.Context, q BalanceQuery) (BalanceResponse, error)

	// ApplyDelta atomically sets (is_initial) or shifts the balance and
	// returns the new value. Deltas must be applied exactly once per logical
	// event; the ledger does not deduplicate.
	ApplyDelta(ctx context.Context, req ApplyDeltaRequest) (BalanceResponse, error)
}

// RequestService is the leave-request approval workflow. Approval does not
// touch the ledger; deduction is a separate BalanceService.ApplyDelta call.
type RequestService interface {
	// Apply submits a new leave request with status Pending
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// Approve transitions a request to Approved and records the approver
	Approve(ctx context.Context, requestID, approverID string) (LeaveRequestResponse, error)

	// Reject transitions a request to Rejected and records the approver
	Reject(ctx context.Context, requestID, approverID string) (LeaveRequestResponse, error)

	// List retrieves enriched leave requests with optional filters
	List(ctx context.Context, req ListLeaveRequestsRequest) ([]LeaveRequestResponse, error)
}
