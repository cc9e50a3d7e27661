package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/employee"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	historyWindowDays = 30
	historyPageSize   = 30
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
//
// There is no guard against an existing check-in: re-checking in the same
// day overwrites the recorded time and puts the record back into 근무중,
// leaving any recorded check-out time in place. Known lost-update hazard:
// the find-then-write round trip carries no concurrency token, so two
// concurrent check-ins for the same employee race and the last write wins.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now()
	today := now.Format(dateLayout)
	timeString := now.Format(timeLayout)

	existing, err := s.AttendanceRepository.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("find today's record: %w", err)
	}

	if existing != nil {
		status := attendance.StatusWorking
		fields := attendance.UpdateFields{
			CheckInTime: &timeString,
			Status:      &status,
		}
		if err := s.AttendanceRepository.Update(ctx, existing.ID, fields); err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("record check-in: %w", err)
		}
		return attendance.CheckInResponse{Time: timeString}, nil
	}

	// The page title carries the employee's display name for the store's
	// own UI.
	name := employee.FallbackName
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	switch {
	case err == nil:
		name = emp.Name
	case errors.Is(err, employee.ErrEmployeeNotFound):
		// keep the fallback name; the record is still created
	default:
		return attendance.CheckInResponse{}, fmt.Errorf("get employee: %w", err)
	}

	rec := attendance.Record{
		Date:        today,
		EmployeeID:  req.EmployeeID,
		CheckInTime: timeString,
		Status:      attendance.StatusWorking,
	}
	if _, err := s.AttendanceRepository.Create(ctx, rec, fmt.Sprintf("%s - %s", name, timeString)); err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("record check-in: %w", err)
	}

	return attendance.CheckInResponse{Time: timeString}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := s.now()
	today := now.Format(dateLayout)
	timeString := now.Format(timeLayout)

	existing, err := s.AttendanceRepository.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("find today's record: %w", err)
	}
	if existing == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoRecordToday
	}
	if existing.CheckInTime == "" {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}

	hours, err := workingHours(existing.CheckInTime, now)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("compute working hours: %w", err)
	}

	status := attendance.StatusCheckedOut
	fields := attendance.UpdateFields{
		CheckOutTime: &timeString,
		WorkingHours: &hours,
		Status:       &status,
	}
	if err := s.AttendanceRepository.Update(ctx, existing.ID, fields); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("record check-out: %w", err)
	}

	return attendance.CheckOutResponse{Time: timeString, WorkingHours: hours}, nil
}

// Today implements attendance.AttendanceService. A day without a record
// yields ErrNoRecordToday, which callers treat as "no record", not a
// failure.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.RecordResponse{}, validator.ValidationErrors{{
			Field:   "employeeId",
			Message: "employeeId is required",
		}}
	}

	today := s.now().Format(dateLayout)
	rec, err := s.AttendanceRepository.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("find today's record: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrNoRecordToday
	}

	return attendance.ToResponse(*rec), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "employeeId",
			Message: "employeeId is required",
		}}
	}

	onOrAfter := s.now().AddDate(0, 0, -historyWindowDays).Format(dateLayout)
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, onOrAfter, historyPageSize)
	if err != nil {
		return nil, fmt.Errorf("list attendance history: %w", err)
	}

	out := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToResponse(rec))
	}
	return out, nil
}

// workingHours computes the elapsed time between a check-in recorded as a
// local time of day and the check-out instant, rounded to one decimal hour.
// A check-in whose time of day lies after the check-out clock is taken to
// have happened before midnight, so the difference is shifted forward by 24
// hours rather than reported negative.
func workingHours(checkInTime string, now time.Time) (float64, error) {
	parsed, err := time.Parse(timeLayout, checkInTime)
	if err != nil {
		return 0, fmt.Errorf("parse check-in time %q: %w", checkInTime, err)
	}

	checkIn := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())

	elapsed := now.Sub(checkIn)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}

	return math.Round(elapsed.Hours()*10) / 10, nil
}
