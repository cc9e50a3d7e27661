package attendance

import "errors"

// Attendance domain errors
var (
	// ErrNoRecordToday means no attendance record exists for the employee
	// today. For status lookups this is an expected outcome, not a failure.
	ErrNoRecordToday = errors.New("no attendance record for today")

	// ErrNotCheckedIn means today's record exists but carries no check-in
	// time, so a check-out cannot be computed.
	ErrNotCheckedIn = errors.New("check-in time has not been recorded")
)
