package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/config"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

type RequestServiceImpl struct {
	tx database.TxManager
	leave.LeaveRequestRepository
	directory employee.EmployeeDirectory
	policy    config.PolicyConfig
}

// NewRequestService creates a new leave request service
func NewRequestService(
	tx database.TxManager,
	requestRepo leave.LeaveRequestRepository,
	directory employee.EmployeeDirectory,
	policy config.PolicyConfig,
) leave.RequestService {
	return &RequestServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: requestRepo,
		directory:              directory,
		policy:                 policy,
	}
}

func toRequestResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:               request.ID,
		EmployeeID:       request.EmployeeID,
		EmployeeName:     request.EmployeeName,
		EmployeeCode:     request.EmployeeCode,
		LeaveTypeID:      request.LeaveTypeID,
		LeaveTypeName:    request.LeaveTypeName,
		StartDate:        validator.FormatDate(request.StartDate),
		EndDate:          validator.FormatDate(request.EndDate),
		Reason:           request.Reason,
		Status:           string(request.Status),
		ApproverID:       request.ApproverID,
		ApproverUsername: request.ApproverUsername,
		RequestDate:      validator.FormatDateTime(request.RequestDate),
	}
}

// Apply implements leave.RequestService.
func (r *RequestServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, end := req.Dates()

	if r.policy.EnforceLeaveDateOrder && end.Before(start) {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "end_date must not be before start_date"},
		}
	}

	if r.policy.VerifyEmployee {
		exists, err := r.directory.Exists(ctx, req.EmployeeID)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to verify employee: %w", err)
		}
		if !exists {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
	}

	created, err := r.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.LeaveRequestStatusPending,
		RequestDate: time.Now(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// Approve implements leave.RequestService.
func (r *RequestServiceImpl) Approve(ctx context.Context, requestID, approverID string) (leave.LeaveRequestResponse, error) {
	return r.transition(ctx, requestID, approverID, leave.LeaveRequestStatusApproved)
}

// Reject implements leave.RequestService.
func (r *RequestServiceImpl) Reject(ctx context.Context, requestID, approverID string) (leave.LeaveRequestResponse, error) {
	return r.transition(ctx, requestID, approverID, leave.LeaveRequestStatusRejected)
}

// transition is the shared status-change primitive behind Approve and
// Reject. With AllowStatusOverride on it overwrites status and approver even
// on an already-processed request, matching the base workflow; turning the
// flag off makes Approved and Rejected terminal.
func (r *RequestServiceImpl) transition(ctx context.Context, requestID, approverID string, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	err := r.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := r.LeaveRequestRepository.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}

		if !r.policy.AllowStatusOverride && current.Status.IsTerminal() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		return r.LeaveRequestRepository.UpdateStatus(txCtx, requestID, status, approverID)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := r.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(updated), nil
}

// List implements leave.RequestService.
func (r *RequestServiceImpl) List(ctx context.Context, req leave.ListLeaveRequestsRequest) ([]leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requests, err := r.LeaveRequestRepository.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}

	return responses, nil
}
