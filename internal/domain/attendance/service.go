package attendance

import "context"

type AttendanceService interface {
	// CheckIn records a check-in for today, creating today's record or
	// overwriting the check-in time of an existing one.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut records a check-out and the computed working hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// Today returns today's record, or ErrNoRecordToday when none exists.
	Today(ctx context.Context, employeeID string) (RecordResponse, error)

	// History returns the trailing-window records, newest first.
	History(ctx context.Context, employeeID string) ([]RecordResponse, error)
}
