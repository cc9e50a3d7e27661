package employee

// Employee is a roster entry. Employees are created and edited in the record
// store's own UI; this system only reads them.
type Employee struct {
	ID           string
	Name         string
	Department   string
	Position     string
	EmployeeCode string
	Phone        string
	Email        string
	ProfileImage string
}

// FallbackName is shown when an employee page carries no name.
const FallbackName = "이름 없음"
