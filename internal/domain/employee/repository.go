package employee

import "context"

// EmployeeRepository defines read access to the roster collection.
type EmployeeRepository interface {
	// List retrieves the full roster sorted by name ascending.
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves a single employee by its page id.
	GetByID(ctx context.Context, id string) (Employee, error)
}
