package attendance

import "errors"

var (
	ErrDayNotFound    = errors.New("no attendance found for that date")
	ErrRecordNotFound = errors.New("attendance record not found")
)
