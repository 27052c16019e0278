package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ApplyDelta(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	balanceService leave.BalanceService
	requestService leave.RequestService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(balanceService leave.BalanceService, requestService leave.RequestService) LeaveHandler {
	return &LeaveHandlerImpl{
		balanceService: balanceService,
		requestService: requestService,
	}
}

// CreateLeaveType implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := l.balanceService.CreateLeaveType(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create leave type", "error", err, "name", req.Name)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leaveType)
}

// ListLeaveTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := l.balanceService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}

	q := leave.BalanceQuery{
		EmployeeID:  r.URL.Query().Get("employee_id"),
		LeaveTypeID: r.URL.Query().Get("leave_type_id"),
		Year:        year,
	}

	balance, err := l.balanceService.GetBalance(r.Context(), q)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// ApplyDelta implements LeaveHandler.
func (l *LeaveHandlerImpl) ApplyDelta(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyDeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := l.balanceService.ApplyDelta(r.Context(), req)
	if err != nil {
		slog.Error("Failed to apply balance delta", "error", err,
			"employee_id", req.EmployeeID, "leave_type_id", req.LeaveTypeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := l.requestService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Failed to submit leave request", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", request)
}

type decisionRequest struct {
	ApproverID string `json:"approver_id"`
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.requestService.Approve)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.requestService.Reject)
}

func (l *LeaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, requestID, approverID string) (leave.LeaveRequestResponse, error),
) {
	requestID := chi.URLParam(r, "requestID")

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.ApproverID == "" {
		response.BadRequest(w, "approver_id is required", nil)
		return
	}

	request, err := fn(r.Context(), requestID, req.ApproverID)
	if err != nil {
		slog.Error("Failed to update leave request status", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := leave.ListLeaveRequestsRequest{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		req.Status = &v
	}

	requests, err := l.requestService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
