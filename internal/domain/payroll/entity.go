package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive calendar date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the period, inclusive of
// both ends. Every calendar day counts toward expected hours; rest
// days are already priced into the contracted shift hours.
func (p Period) Days() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// ReportLine is one employee's payroll figures for a period. All
// monetary and minute values carry full precision; rounding to two
// decimals happens only when the line is rendered.
//
// Lines are never persisted; a report is recomputed from the raw
// snapshot on every request.
type ReportLine struct {
	EmployeeID      string
	Name            string
	ExpectedMinutes decimal.Decimal
	AttendedMinutes decimal.Decimal
	ProratedBase    decimal.Decimal
	AdjustmentTotal decimal.Decimal
	FinalPay        decimal.Decimal

	// Err flags a line whose figures could not be computed, e.g. zero
	// expected minutes. The line stays in the report so no employee is
	// silently dropped.
	Err error
}
