package report

import (
	"context"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/report"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	report.ReportRepository
	directory employee.EmployeeDirectory
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo report.ReportRepository,
	directory employee.EmployeeDirectory,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		directory:        directory,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DailyAttendanceReport implements report.ReportService.
func (r *ReportServiceImpl) DailyAttendanceReport(ctx context.Context, req report.DailyAttendanceReportRequest) (report.DailyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyAttendanceReport{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	records, err := r.ReportRepository.GetDailyAttendance(ctx, date)
	if err != nil {
		return report.DailyAttendanceReport{}, err
	}

	rows := make([]report.DailyAttendanceRow, 0, len(records))
	for _, att := range records {
		var clockOut *string
		if att.ClockOut != nil {
			formatted := validator.FormatDateTime(*att.ClockOut)
			clockOut = &formatted
		}
		rows = append(rows, report.DailyAttendanceRow{
			EmployeeID:   att.EmployeeID,
			EmployeeName: derefString(att.EmployeeName),
			EmployeeCode: derefString(att.EmployeeCode),
			ClockIn:      validator.FormatDateTime(att.ClockIn),
			ClockOut:     clockOut,
			Notes:        att.Notes,
			Source:       att.Source,
			Duration:     report.FormatDuration(att.ClockIn, att.ClockOut),
		})
	}

	return report.DailyAttendanceReport{
		Date:        req.Date,
		GeneratedAt: validator.FormatDateTime(time.Now()),
		Rows:        rows,
	}, nil
}

// EmployeeAttendanceSummary implements report.ReportService. A day with
// several sessions counts once; open and malformed sessions are skipped in
// the duration sum without failing the report.
func (r *ReportServiceImpl) EmployeeAttendanceSummary(ctx context.Context, req report.AttendanceSummaryRequest) (report.AttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceSummary{}, err
	}

	emp, err := r.directory.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.AttendanceSummary{}, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	records, err := r.ReportRepository.GetAttendanceInRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.AttendanceSummary{}, err
	}

	daysPresent := make(map[string]struct{})
	var total time.Duration
	for _, att := range records {
		daysPresent[validator.FormatDate(att.AttendanceDate)] = struct{}{}
		if att.ClockOut != nil && att.ClockOut.After(att.ClockIn) {
			total += att.ClockOut.Sub(att.ClockIn)
		}
	}

	return report.AttendanceSummary{
		EmployeeID:       req.EmployeeID,
		EmployeeName:     emp.FullName(),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		TotalDaysPresent: len(daysPresent),
		TotalDuration:    report.FormatElapsed(total),
	}, nil
}

// LeaveReport implements report.ReportService.
func (r *ReportServiceImpl) LeaveReport(ctx context.Context, req report.LeaveReportRequest) (report.LeaveReport, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveReport{}, err
	}

	start, _ := validator.ParseDate(req.StartDate)
	end, _ := validator.ParseDate(req.EndDate)

	filter := report.LeaveReportFilter{
		StartDate:   start,
		EndDate:     end,
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
	}
	if req.Status != nil && *req.Status != "" {
		status := leave.LeaveRequestStatus(*req.Status)
		filter.Status = &status
	}

	requests, err := r.ReportRepository.GetLeaveRequestsOverlapping(ctx, filter)
	if err != nil {
		return report.LeaveReport{}, err
	}

	rows := make([]report.LeaveReportRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, report.LeaveReportRow{
			RequestID:        request.ID,
			EmployeeID:       request.EmployeeID,
			EmployeeName:     derefString(request.EmployeeName),
			EmployeeCode:     derefString(request.EmployeeCode),
			LeaveTypeName:    derefString(request.LeaveTypeName),
			StartDate:        validator.FormatDate(request.StartDate),
			EndDate:          validator.FormatDate(request.EndDate),
			Reason:           request.Reason,
			Status:           string(request.Status),
			ApproverUsername: request.ApproverUsername,
		})
	}

	return report.LeaveReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: validator.FormatDateTime(time.Now()),
		Rows:        rows,
	}, nil
}

// AbsenteeReport implements report.ReportService.
func (r *ReportServiceImpl) AbsenteeReport(ctx context.Context, req report.AbsenteeReportRequest) (report.AbsenteeReport, error) {
	if err := req.Validate(); err != nil {
		return report.AbsenteeReport{}, err
	}

	date, _ := validator.ParseDate(req.Date)

	absentees, err := r.ReportRepository.GetAbsentees(ctx, date)
	if err != nil {
		return report.AbsenteeReport{}, err
	}

	rows := make([]report.AbsenteeRow, 0, len(absentees))
	for _, emp := range absentees {
		rows = append(rows, report.AbsenteeRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			EmployeeCode: emp.EmployeeCode,
			Department:   emp.Department,
		})
	}

	return report.AbsenteeReport{
		Date:        req.Date,
		GeneratedAt: validator.FormatDateTime(time.Now()),
		Rows:        rows,
	}, nil
}
