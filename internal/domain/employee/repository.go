package employee

import "context"

// EmployeeDirectory is the read-only view of the externally owned employee
// store used for referential checks and report enrichment.
type EmployeeDirectory interface {
	// Exists reports whether an employee with the given ID is in the directory.
	Exists(ctx context.Context, id string) (bool, error)

	// GetByID returns a single employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns all employees ordered by last name then first name.
	List(ctx context.Context) ([]Employee, error)
}
