package postgresql

import (
	"context"
	"fmt"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/leave"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepository struct {
	db *database.DB
}

// NewLeaveTypeRepository creates a new PostgreSQL leave type repository
func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (l *leaveTypeRepository) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	if lt.ID == "" {
		lt.ID = uuid.NewString()
	}

	// ON CONFLICT keeps the name-uniqueness check in one round trip; no row
	// back means the name is taken.
	query := `
		INSERT INTO leave_types (id, name, default_balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, lt.ID, lt.Name, lt.DefaultBalance).
		Scan(&lt.CreatedAt, &lt.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return lt, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (l *leaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, default_balance, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.DefaultBalance, &lt.CreatedAt, &lt.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return lt, nil
}

// List implements leave.LeaveTypeRepository.
func (l *leaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, default_balance, created_at, updated_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.DefaultBalance, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave types: %w", err)
	}

	return types, nil
}
