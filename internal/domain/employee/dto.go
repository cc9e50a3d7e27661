package employee

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	EmployeeID   string `json:"employeeId"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Department:   e.Department,
		Position:     e.Position,
		EmployeeID:   e.EmployeeCode,
		Phone:        e.Phone,
		Email:        e.Email,
		ProfileImage: e.ProfileImage,
	}
}
