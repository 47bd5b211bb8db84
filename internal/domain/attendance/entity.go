package attendance

import "time"

// ClockRecord holds one employee's raw clock times for a single day.
// All four fields are 24-hour "HH:MM" wall-clock strings; they are
// stored as entered and only parsed when a report is computed.
type ClockRecord struct {
	EmployeeID string
	InTime     string
	OutTime    string
	LunchIn    string
	LunchOut   string
}

// Day is the attendance document for one account and calendar date.
// Records is keyed by employee ID, so an employee can hold at most one
// record per day; a second write for the same employee replaces the
// first. The payroll engine relies on this when summing.
type Day struct {
	AccountID string
	Date      time.Time
	Records   map[string]ClockRecord
}
