package employee

// Employee is owned by the external directory. The core only reads identity
// and display fields and never mutates it.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	EmployeeCode string
	Department   *string
	Email        *string
	JobTitle     *string
}

// FullName returns the display name used in reports.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
