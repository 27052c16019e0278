package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dawami-hr/dawami-backend-go/internal/config"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

const defaultSource = "manual"

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	directory employee.EmployeeDirectory
	policy    config.PolicyConfig
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	directory employee.EmployeeDirectory,
	policy config.PolicyConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		directory:            directory,
		policy:               policy,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := validator.FormatDateTime(*t)
	return &format
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		EmployeeName:   att.EmployeeName,
		EmployeeCode:   att.EmployeeCode,
		ClockInTime:    validator.FormatDateTime(att.ClockIn),
		ClockOutTime:   timePtrToString(att.ClockOut),
		AttendanceDate: validator.FormatDate(att.AttendanceDate),
		Notes:          att.Notes,
		Source:         att.Source,
	}
}

// ClockIn implements attendance.AttendanceService. Each clock-in opens a new
// session; the attendance date is derived from the clock-in instant and never
// changes afterwards.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if a.policy.VerifyEmployee {
		exists, err := a.directory.Exists(ctx, req.EmployeeID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to verify employee: %w", err)
		}
		if !exists {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
	}

	clockIn := req.Time(time.Now())
	source := req.Source
	if source == "" {
		source = defaultSource
	}

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		ClockIn:    clockIn,
		AttendanceDate: time.Date(
			clockIn.Year(), clockIn.Month(), clockIn.Day(),
			0, 0, 0, 0, clockIn.Location(),
		),
		Notes:  req.Notes,
		Source: source,
	}

	created, err := a.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// GetOpenSession implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetOpenSession(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// ClockOut implements attendance.AttendanceService. Find-then-close runs
// inside one transaction with the open session row locked, so two concurrent
// clock-outs cannot both close the same session.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut := req.Time(time.Now())

	var closed attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		open, err := a.AttendanceRepository.GetOpenSessionForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		if clockOut.Before(open.ClockIn) {
			return attendance.ErrClockOutBeforeClockIn
		}

		closed, err = a.AttendanceRepository.CloseSession(txCtx, open.ID, clockOut, mergeNotes(open.Notes, req.Notes))
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(closed), nil
}

// mergeNotes appends clock-out notes to whatever the clock-in recorded.
func mergeNotes(existing, outNotes *string) *string {
	if outNotes == nil || *outNotes == "" {
		return existing
	}
	var merged string
	if existing != nil && *existing != "" {
		merged = fmt.Sprintf("%s\nClock-out: %s", *existing, *outNotes)
	} else {
		merged = fmt.Sprintf("Clock-out: %s", *outNotes)
	}
	return &merged
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, req attendance.ListRecordsRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}
