package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance days. All
// methods take accountID to keep tenants isolated at the query level.
type AttendanceRepository interface {
	// UpsertDay merges the given records into the day identified by
	// (accountID, date), replacing any existing record for the same
	// employee. Records for employees not present in the input are left
	// untouched.
	UpsertDay(ctx context.Context, day Day) (Day, error)

	// GetByDate returns the day for (accountID, date), or ErrDayNotFound.
	GetByDate(ctx context.Context, accountID string, date time.Time) (Day, error)

	// ListRange returns all days with records in [start, end] inclusive,
	// ordered by date ascending.
	ListRange(ctx context.Context, accountID string, start, end time.Time) ([]Day, error)

	// UpdateRecord replaces all four time fields of one employee's
	// record on one date, or returns ErrRecordNotFound. The update is a
	// single statement scoped to that employee's row, so concurrent
	// edits to other employees on the same day are never lost.
	UpdateRecord(ctx context.Context, accountID string, date time.Time, rec ClockRecord) error

	// DeleteRecord removes one employee's record for one date, leaving
	// the rest of the day intact. Returns ErrRecordNotFound when there
	// is nothing to delete. A day whose last record is deleted simply
	// has no rows; no separate cleanup happens.
	DeleteRecord(ctx context.Context, accountID string, date time.Time, employeeID string) error
}
