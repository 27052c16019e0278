package postgresql

import (
	"context"
	"fmt"

	"github.com/dawami-hr/dawami-backend-go/internal/domain/employee"
	"github.com/dawami-hr/dawami-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeDirectory struct {
	db *database.DB
}

// NewEmployeeDirectory creates a read-only view over the employees table
func NewEmployeeDirectory(db *database.DB) employee.EmployeeDirectory {
	return &employeeDirectory{db: db}
}

// Exists implements employee.EmployeeDirectory.
func (e *employeeDirectory) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// GetByID implements employee.EmployeeDirectory.
func (e *employeeDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, first_name, last_name, employee_code, department, email, job_title
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.EmployeeCode,
		&emp.Department, &emp.Email, &emp.JobTitle,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeDirectory.
func (e *employeeDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, first_name, last_name, employee_code, department, email, job_title
		FROM employees
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.EmployeeCode,
			&emp.Department, &emp.Email, &emp.JobTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
