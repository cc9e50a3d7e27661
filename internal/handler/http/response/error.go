package response

import (
	"errors"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/employee"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoRecordToday):
		NotFound(w, "오늘의 출퇴근 기록이 없습니다.")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "출근 시간이 기록되지 않았습니다.", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "직원을 찾을 수 없습니다.")

	// Default: store or mapping failure, kept generic
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
