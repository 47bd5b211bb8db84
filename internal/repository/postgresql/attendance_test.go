package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
	"github.com/workshophq/workforce-backend-go/internal/repository/postgresql"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, attendance.AttendanceRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := postgresql.NewAttendanceRepository(&database.DB{Pool: mock})
	return mock, repo
}

var testDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestAttendanceRepository_UpdateRecord(t *testing.T) {
	rec := attendance.ClockRecord{
		EmployeeID: "emp-1",
		InTime:     "09:00",
		OutTime:    "18:00",
		LunchIn:    "13:00",
		LunchOut:   "14:00",
	}

	t.Run("updates the matching row", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE attendance_records").
			WithArgs(rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut, "acc-1", testDate, rec.EmployeeID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateRecord(context.Background(), "acc-1", testDate, rec)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record yields not found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("UPDATE attendance_records").
			WithArgs(rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut, "acc-1", testDate, rec.EmployeeID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateRecord(context.Background(), "acc-1", testDate, rec)
		assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_DeleteRecord(t *testing.T) {
	t.Run("deletes only the targeted employee row", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("DELETE FROM attendance_records").
			WithArgs("acc-1", testDate, "emp-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeleteRecord(context.Background(), "acc-1", testDate, "emp-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing record yields not found", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectExec("DELETE FROM attendance_records").
			WithArgs("acc-1", testDate, "emp-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteRecord(context.Background(), "acc-1", testDate, "emp-1")
		assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttendanceRepository_UpsertDay(t *testing.T) {
	day := attendance.Day{
		AccountID: "acc-1",
		Date:      testDate,
		Records: map[string]attendance.ClockRecord{
			"emp-1": {EmployeeID: "emp-1", InTime: "09:00", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:00"},
		},
	}

	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance_records").
		WithArgs("acc-1", testDate, "emp-1", "09:00", "18:00", "13:00", "14:00").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT employee_id, in_time, out_time, lunch_in, lunch_out").
		WithArgs("acc-1", testDate).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "in_time", "out_time", "lunch_in", "lunch_out"}).
			AddRow("emp-1", "09:00", "18:00", "13:00", "14:00"))

	saved, err := repo.UpsertDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", saved.AccountID)
	require.Contains(t, saved.Records, "emp-1")
	assert.Equal(t, "18:00", saved.Records["emp-1"].OutTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByDate_Empty(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT employee_id, in_time, out_time, lunch_in, lunch_out").
		WithArgs("acc-1", testDate).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "in_time", "out_time", "lunch_in", "lunch_out"}))

	_, err := repo.GetByDate(context.Background(), "acc-1", testDate)
	assert.ErrorIs(t, err, attendance.ErrDayNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_ListRange_GroupsByDate(t *testing.T) {
	mock, repo := newMockRepo(t)

	day2 := testDate.AddDate(0, 0, 1)
	mock.ExpectQuery("SELECT date, employee_id, in_time, out_time, lunch_in, lunch_out").
		WithArgs("acc-1", testDate, day2).
		WillReturnRows(pgxmock.NewRows([]string{"date", "employee_id", "in_time", "out_time", "lunch_in", "lunch_out"}).
			AddRow(testDate, "emp-1", "09:00", "18:00", "13:00", "14:00").
			AddRow(testDate, "emp-2", "10:00", "17:00", "13:00", "13:30").
			AddRow(day2, "emp-1", "09:00", "17:00", "12:00", "13:00"))

	days, err := repo.ListRange(context.Background(), "acc-1", testDate, day2)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Len(t, days[0].Records, 2)
	assert.Len(t, days[1].Records, 1)
	assert.True(t, days[1].Date.Equal(day2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
