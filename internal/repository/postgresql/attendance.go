package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
)

// attendanceRepository stores one row per (account, date, employee).
// The unique key gives the domain's one-record-per-employee-per-day
// set semantics by construction, and lets single-record updates and
// deletes be single statements, so readers never see a day with a
// half-applied edit.
type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const upsertRecordQuery = `
	INSERT INTO attendance_records (account_id, date, employee_id, in_time, out_time, lunch_in, lunch_out)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (account_id, date, employee_id)
	DO UPDATE SET in_time = EXCLUDED.in_time,
	              out_time = EXCLUDED.out_time,
	              lunch_in = EXCLUDED.lunch_in,
	              lunch_out = EXCLUDED.lunch_out,
	              updated_at = NOW()
`

// UpsertDay implements attendance.AttendanceRepository. All records
// are written in one transaction so a concurrent reader sees either
// the old day or the new one.
func (r *attendanceRepository) UpsertDay(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range day.Records {
			if _, err := tx.Exec(ctx, upsertRecordQuery,
				day.AccountID, day.Date, rec.EmployeeID,
				rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut,
			); err != nil {
				return fmt.Errorf("failed to upsert record for employee %s: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.Day{}, err
	}

	return r.GetByDate(ctx, day.AccountID, day.Date)
}

// GetByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByDate(ctx context.Context, accountID string, date time.Time) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, in_time, out_time, lunch_in, lunch_out
		FROM attendance_records
		WHERE account_id = $1 AND date = $2
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, accountID, date)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	defer rows.Close()

	day := attendance.Day{
		AccountID: accountID,
		Date:      date,
		Records:   make(map[string]attendance.ClockRecord),
	}
	for rows.Next() {
		var rec attendance.ClockRecord
		if err := rows.Scan(&rec.EmployeeID, &rec.InTime, &rec.OutTime, &rec.LunchIn, &rec.LunchOut); err != nil {
			return attendance.Day{}, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		day.Records[rec.EmployeeID] = rec
	}
	if err := rows.Err(); err != nil {
		return attendance.Day{}, fmt.Errorf("failed to read attendance records: %w", err)
	}

	if len(day.Records) == 0 {
		return attendance.Day{}, attendance.ErrDayNotFound
	}

	return day, nil
}

// ListRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, accountID string, start, end time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, employee_id, in_time, out_time, lunch_in, lunch_out
		FROM attendance_records
		WHERE account_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		var date time.Time
		var rec attendance.ClockRecord
		if err := rows.Scan(&date, &rec.EmployeeID, &rec.InTime, &rec.OutTime, &rec.LunchIn, &rec.LunchOut); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		if len(days) == 0 || !days[len(days)-1].Date.Equal(date) {
			days = append(days, attendance.Day{
				AccountID: accountID,
				Date:      date,
				Records:   make(map[string]attendance.ClockRecord),
			})
		}
		days[len(days)-1].Records[rec.EmployeeID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return days, nil
}

// UpdateRecord implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateRecord(ctx context.Context, accountID string, date time.Time, rec attendance.ClockRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET in_time = $1, out_time = $2, lunch_in = $3, lunch_out = $4, updated_at = NOW()
		WHERE account_id = $5 AND date = $6 AND employee_id = $7
	`

	tag, err := q.Exec(ctx, query,
		rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut,
		accountID, date, rec.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// DeleteRecord implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteRecord(ctx context.Context, accountID string, date time.Time, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance_records
		WHERE account_id = $1 AND date = $2 AND employee_id = $3
	`

	tag, err := q.Exec(ctx, query, accountID, date, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
