package payroll

import "errors"

var (
	// ErrZeroExpectedMinutes marks a report line whose proration
	// denominator is zero (zero-length period or zero shift hours).
	ErrZeroExpectedMinutes = errors.New("expected minutes for the period is zero")

	// ErrNegativeWorkedMinutes is returned when the reject policy is
	// active and a record's out time precedes its in time.
	ErrNegativeWorkedMinutes = errors.New("record yields negative worked minutes")
)
