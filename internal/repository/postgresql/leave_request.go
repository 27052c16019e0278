package postgresql

import (
	"context"
	"fmt"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

// NewLeaveRequestRepository creates a new PostgreSQL leave request repository
func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// enrichedSelect joins the display fields reports and responses need. The
// approver join goes through users because approvers sign in, employees on
// leave do not have to.
const enrichedSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
		   lr.reason, lr.status, lr.approver_id, lr.request_date,
		   lr.created_at, lr.updated_at,
		   e.first_name || ' ' || e.last_name AS employee_name,
		   e.employee_code,
		   lt.name AS leave_type_name,
		   u.username AS approver_username
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	JOIN leave_types lt ON lt.id = lr.leave_type_id
	LEFT JOIN users u ON u.id = lr.approver_id
`

func scanEnriched(row pgx.Row, request *leave.LeaveRequest) error {
	return row.Scan(
		&request.ID, &request.EmployeeID, &request.LeaveTypeID,
		&request.StartDate, &request.EndDate,
		&request.Reason, &request.Status, &request.ApproverID, &request.RequestDate,
		&request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName, &request.EmployeeCode,
		&request.LeaveTypeName, &request.ApproverUsername,
	)
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, start_date, end_date,
			reason, status, request_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveTypeID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
		request.RequestDate,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := enrichedSelect + " WHERE lr.id = $1"

	var request leave.LeaveRequest
	if err := scanEnriched(q.QueryRow(ctx, query, id), &request); err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

// GetByIDForUpdate implements leave.LeaveRequestRepository. Returns the bare
// row without joins so the lock covers only leave_requests.
func (l *leaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type_id, start_date, end_date,
			   reason, status, approver_id, request_date, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
		FOR UPDATE
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveTypeID,
		&request.StartDate, &request.EndDate,
		&request.Reason, &request.Status, &request.ApproverID, &request.RequestDate,
		&request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request for update: %w", err)
	}

	return request, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, approverID string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			approver_id = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, approverID)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := enrichedSelect + " WHERE 1=1"

	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	query += " ORDER BY lr.request_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		if err := scanEnriched(rows, &request); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
