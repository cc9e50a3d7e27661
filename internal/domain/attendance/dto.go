package attendance

import (
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	EmployeeID   string   `json:"employeeId"`
	CheckInTime  string   `json:"checkInTime,omitempty"`
	CheckOutTime string   `json:"checkOutTime,omitempty"`
	WorkingHours *float64 `json:"workingHours,omitempty"`
	Status       string   `json:"status"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:           rec.ID,
		Date:         rec.Date,
		EmployeeID:   rec.EmployeeID,
		CheckInTime:  rec.CheckInTime,
		CheckOutTime: rec.CheckOutTime,
		WorkingHours: rec.WorkingHours,
		Status:       rec.Status,
	}
}

type CheckInResponse struct {
	Time string `json:"time"`
}

type CheckOutResponse struct {
	Time         string  `json:"time"`
	WorkingHours float64 `json:"workingHours"`
}
