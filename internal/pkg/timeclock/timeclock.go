// Package timeclock provides wall-clock arithmetic for attendance records.
// Times are "HH:MM" strings on a single calendar day; all math is in
// integer minutes since midnight.
package timeclock

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a clock time that could not be decoded.
// Field and context information is attached by callers via Wrap.
type ParseError struct {
	Value string
	Field string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid clock time %q in field %s", e.Value, e.Field)
	}
	return fmt.Sprintf("invalid clock time %q", e.Value)
}

// ToMinutes parses "H:MM" or "HH:MM" into minutes since midnight.
// The leading zero on the hour is optional.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Value: hhmm}
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, &ParseError{Value: hhmm}
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &ParseError{Value: hhmm}
	}
	return h*60 + m, nil
}

// WorkedMinutes computes attended minutes for one day: the in/out span
// minus any lunch break taken beyond the allowed minutes. Break time
// within the allowance costs nothing. The result is not clamped: an
// out time before the in time yields a negative value, which callers
// decide how to treat.
func WorkedMinutes(inTime, outTime, lunchIn, lunchOut string, allowedLunchMinutes int) (int, error) {
	inMin, err := ToMinutes(inTime)
	if err != nil {
		return 0, fieldErr(err, "in_time")
	}
	outMin, err := ToMinutes(outTime)
	if err != nil {
		return 0, fieldErr(err, "out_time")
	}
	lunchInMin, err := ToMinutes(lunchIn)
	if err != nil {
		return 0, fieldErr(err, "lunch_in")
	}
	lunchOutMin, err := ToMinutes(lunchOut)
	if err != nil {
		return 0, fieldErr(err, "lunch_out")
	}

	total := outMin - inMin
	breakTaken := lunchOutMin - lunchInMin
	excess := breakTaken - allowedLunchMinutes
	if excess < 0 {
		excess = 0
	}
	return total - excess, nil
}

func fieldErr(err error, field string) error {
	if pe, ok := err.(*ParseError); ok {
		return &ParseError{Value: pe.Value, Field: field}
	}
	return err
}
