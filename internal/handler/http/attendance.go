package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/response"
)

// Attendance actions selected by the "action" query parameter.
const (
	actionToday    = "today"
	actionCheckIn  = "check-in"
	actionCheckOut = "check-out"
)

type AttendanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Post(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Get implements AttendanceHandler. action=today returns today's record;
// any other action returns the trailing history.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")

	if r.URL.Query().Get("action") == actionToday {
		result, err := h.attendanceService.Today(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	results, err := h.attendanceService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// Post implements AttendanceHandler, dispatching on action.
func (h *attendanceHandlerImpl) Post(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case actionCheckIn:
		var req attendance.CheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode check-in request", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		result, err := h.attendanceService.CheckIn(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "출근이 기록되었습니다.", result)

	case actionCheckOut:
		var req attendance.CheckOutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode check-out request", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		result, err := h.attendanceService.CheckOut(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "퇴근이 기록되었습니다.", result)

	default:
		response.BadRequest(w, "유효하지 않은 액션입니다.", nil)
	}
}
