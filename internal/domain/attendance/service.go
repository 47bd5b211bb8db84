package attendance

import "context"

type AttendanceService interface {
	// SaveDay upserts a whole day's record set, replacing records
	// per employee.
	SaveDay(ctx context.Context, req SaveDayRequest) (DayResponse, error)

	// GetDay returns the record set for one date.
	GetDay(ctx context.Context, date string) (DayResponse, error)

	// DailyReport flattens attendance in a range into per-day,
	// per-employee rows with computed worked hours.
	DailyReport(ctx context.Context, filter DailyReportFilter) ([]DailyRow, error)

	// UpdateRecord replaces one employee's record on one date.
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) error

	// DeleteRecord removes one employee's record on one date.
	DeleteRecord(ctx context.Context, date string, employeeID string) error
}
