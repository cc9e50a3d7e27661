package attendance

import "context"

// UpdateFields is a partial patch against an existing record. Only non-nil
// fields are written; everything else keeps its stored value.
type UpdateFields struct {
	CheckInTime  *string
	CheckOutTime *string
	WorkingHours *float64
	Status       *string
}

// AttendanceRepository defines data access over the attendance collection.
type AttendanceRepository interface {
	// FindByEmployeeAndDate returns the record for (employeeID, date), or
	// nil when none exists.
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)

	// Create stores a new record. title becomes the page's display title.
	Create(ctx context.Context, rec Record, title string) (Record, error)

	// Update applies a partial patch to the record with the given id.
	Update(ctx context.Context, id string, fields UpdateFields) error

	// ListByEmployee retrieves records dated on or after onOrAfter, newest
	// first, at most limit entries.
	ListByEmployee(ctx context.Context, employeeID, onOrAfter string, limit int) ([]Record, error)
}
