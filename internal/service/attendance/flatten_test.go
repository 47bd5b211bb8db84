package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
)

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", Name: "Asha", MonthlySalary: decimal.NewFromInt(30000), ShiftHours: 8, LunchMinutes: 60},
		{ID: "emp-2", Name: "Binod", MonthlySalary: decimal.NewFromInt(24000), ShiftHours: 8, LunchMinutes: 30},
	}
}

func testDay(dateStr string, recs ...attendance.ClockRecord) attendance.Day {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	day := attendance.Day{AccountID: "acc-1", Date: d, Records: make(map[string]attendance.ClockRecord)}
	for _, rec := range recs {
		day.Records[rec.EmployeeID] = rec
	}
	return day
}

func TestFlatten_OneRowPerRecord(t *testing.T) {
	days := []attendance.Day{
		testDay("2025-06-01",
			attendance.ClockRecord{EmployeeID: "emp-1", InTime: "09:00", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:30"},
			attendance.ClockRecord{EmployeeID: "emp-2", InTime: "10:00", OutTime: "17:00", LunchIn: "13:00", LunchOut: "13:30"},
		),
		testDay("2025-06-02",
			attendance.ClockRecord{EmployeeID: "emp-1", InTime: "09:00", OutTime: "17:00", LunchIn: "12:00", LunchOut: "13:00"},
		),
	}

	rows := Flatten(days, testEmployees(), "")
	require.Len(t, rows, 3)

	assert.Equal(t, "2025-06-01", rows[0].Date)
	assert.Equal(t, "emp-1", rows[0].EmployeeID)
	assert.Equal(t, "Asha", rows[0].EmployeeName)
	require.NotNil(t, rows[0].WorkedHours)
	// 540 span minus 30 excess lunch.
	assert.Equal(t, 8.5, *rows[0].WorkedHours)

	assert.Equal(t, "emp-2", rows[1].EmployeeID)
	require.NotNil(t, rows[1].WorkedHours)
	// 30 minute break within emp-2's 30 minute allowance.
	assert.Equal(t, 7.0, *rows[1].WorkedHours)

	assert.Equal(t, "2025-06-02", rows[2].Date)
	require.NotNil(t, rows[2].WorkedHours)
	assert.Equal(t, 8.0, *rows[2].WorkedHours)
}

func TestFlatten_UnknownEmployeePlaceholder(t *testing.T) {
	days := []attendance.Day{
		testDay("2025-06-01",
			attendance.ClockRecord{EmployeeID: "ghost", InTime: "09:00", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:30"},
		),
	}

	rows := Flatten(days, testEmployees(), "")
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0].EmployeeName)
	require.NotNil(t, rows[0].WorkedHours)
	// Default 60 minute allowance applies when the directory has no entry.
	assert.Equal(t, 8.5, *rows[0].WorkedHours)
}

func TestFlatten_BadRowFlaggedOthersSurvive(t *testing.T) {
	days := []attendance.Day{
		testDay("2025-06-01",
			attendance.ClockRecord{EmployeeID: "emp-1", InTime: "9am", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:00"},
			attendance.ClockRecord{EmployeeID: "emp-2", InTime: "10:00", OutTime: "17:00", LunchIn: "13:00", LunchOut: "13:30"},
		),
	}

	rows := Flatten(days, testEmployees(), "")
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Error)
	assert.Contains(t, *rows[0].Error, "9am")
	assert.Nil(t, rows[0].WorkedHours)

	assert.Nil(t, rows[1].Error)
	require.NotNil(t, rows[1].WorkedHours)
	assert.Equal(t, 7.0, *rows[1].WorkedHours)
}

func TestFlatten_EmployeeFilter(t *testing.T) {
	days := []attendance.Day{
		testDay("2025-06-01",
			attendance.ClockRecord{EmployeeID: "emp-1", InTime: "09:00", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:00"},
			attendance.ClockRecord{EmployeeID: "emp-2", InTime: "10:00", OutTime: "17:00", LunchIn: "13:00", LunchOut: "13:30"},
		),
	}

	rows := Flatten(days, testEmployees(), "emp-2")
	require.Len(t, rows, 1)
	assert.Equal(t, "emp-2", rows[0].EmployeeID)

	all := Flatten(days, testEmployees(), FilterAll)
	assert.Len(t, all, 2)
}

func TestFlatten_StableOrderWithinDay(t *testing.T) {
	days := []attendance.Day{
		testDay("2025-06-01",
			attendance.ClockRecord{EmployeeID: "emp-2", InTime: "10:00", OutTime: "17:00", LunchIn: "13:00", LunchOut: "13:30"},
			attendance.ClockRecord{EmployeeID: "emp-1", InTime: "09:00", OutTime: "18:00", LunchIn: "13:00", LunchOut: "14:00"},
		),
	}

	for i := 0; i < 10; i++ {
		rows := Flatten(days, testEmployees(), "")
		require.Len(t, rows, 2)
		assert.Equal(t, "emp-1", rows[0].EmployeeID)
		assert.Equal(t, "emp-2", rows[1].EmployeeID)
	}
}

func TestFlatten_EmptyInputs(t *testing.T) {
	rows := Flatten(nil, testEmployees(), "")
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
