package leave

import "errors"

var (
	ErrLeaveTypeNotFound            = errors.New("leave type not found")
	ErrLeaveTypeExists              = errors.New("leave type name already exists")
	ErrLeaveBalanceNotFound         = errors.New("leave balance not found")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
)
