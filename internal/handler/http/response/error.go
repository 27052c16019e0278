package response

import (
	"errors"
	"net/http"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/attendance"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoOpenSession):
		NotFound(w, "No open attendance session")
	case errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out time cannot be before clock-in time", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
