package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetOpenSession(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clock in", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", record)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("Failed to clock out", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// GetOpenSession implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetOpenSession(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	record, err := a.attendanceService.GetOpenSession(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := attendance.ListRecordsRequest{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		req.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		req.EndDate = &v
	}

	records, err := a.attendanceService.ListRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
