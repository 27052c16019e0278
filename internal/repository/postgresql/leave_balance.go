package postgresql

import (
	"context"
	"fmt"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepository struct {
	db *database.DB
}

// NewLeaveBalanceRepository creates a new PostgreSQL leave balance repository
func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// Get implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return l.get(ctx, employeeID, leaveTypeID, year, false)
}

// GetForUpdate implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	return l.get(ctx, employeeID, leaveTypeID, year, true)
}

func (l *leaveBalanceRepository) get(ctx context.Context, employeeID, leaveTypeID string, year int, forUpdate bool) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type_id, year, balance, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
		  AND leave_type_id = $2
		  AND year = $3
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveTypeID, &balance.Year,
		&balance.Balance, &balance.CreatedAt, &balance.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance, nil
}

// Create implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	if balance.ID == "" {
		balance.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.ID, balance.EmployeeID, balance.LeaveTypeID, balance.Year, balance.Balance,
	).Scan(&balance.CreatedAt, &balance.UpdatedAt)

	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return balance, nil
}

// UpdateBalance implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) UpdateBalance(ctx context.Context, id string, balance float64) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_balances
		SET balance = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveBalanceNotFound
	}

	return nil
}
