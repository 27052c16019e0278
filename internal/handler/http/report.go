package http

import (
	"net/http"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/report"
	"github.com/dawami-hr/dawami-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailyAttendance(w http.ResponseWriter, r *http.Request)
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	Absentees(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DailyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) DailyAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.DailyAttendanceReportRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.DailyAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceSummary implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceSummaryRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.EmployeeAttendanceSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leave implements ReportHandler.
func (h *ReportHandlerImpl) Leave(w http.ResponseWriter, r *http.Request) {
	req := report.LeaveReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}
	if v := r.URL.Query().Get("leave_type_id"); v != "" {
		req.LeaveTypeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.reportService.LeaveReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Absentees implements ReportHandler.
func (h *ReportHandlerImpl) Absentees(w http.ResponseWriter, r *http.Request) {
	req := report.AbsenteeReportRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.AbsenteeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
