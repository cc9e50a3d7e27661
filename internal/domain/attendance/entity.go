package attendance

// Record is one attendance entry. (EmployeeID, Date) is the natural key: at
// most one record exists per employee per calendar day.
type Record struct {
	ID           string
	Date         string // YYYY-MM-DD
	EmployeeID   string
	CheckInTime  string // HH:MM:SS local time, empty until the first check-in
	CheckOutTime string
	WorkingHours *float64 // decimal hours, set at check-out
	Status       string
}

// Status values. A record only moves forward within a day: unknown to
// working on check-in, working to checked-out on check-out.
const (
	StatusUnknown    = "미확인"
	StatusWorking    = "근무중"
	StatusCheckedOut = "퇴근"

	// StatusCheckedOutLegacy was written by an earlier deployment and still
	// appears in stored records. Reads treat it like StatusCheckedOut; new
	// check-outs always write StatusCheckedOut.
	StatusCheckedOutLegacy = "퇴근완료"
)
