package attendance

import (
	"math"
	"sort"

	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/pkg/timeclock"
)

// defaultLunchMinutes is assumed for records whose employee has no
// directory entry, so the audit view can still estimate worked hours.
const defaultLunchMinutes = 60

// FilterAll is the employee filter sentinel meaning no filtering.
const FilterAll = "all"

type employeeInfo struct {
	name         string
	lunchMinutes int
}

// Flatten turns attendance days into one row per (date, employee)
// record, with worked hours computed the same way the payroll engine
// does. Unlike the payroll report this favors partial results: a row
// whose clock strings cannot be parsed is flagged and kept, and a
// record referencing an unknown employee renders with a placeholder
// name instead of failing the whole report. The audit view is for
// finding and fixing bad data, not for totalling money.
func Flatten(days []attendance.Day, employees []employee.Employee, filterEmployeeID string) []attendance.DailyRow {
	info := make(map[string]employeeInfo, len(employees))
	for _, emp := range employees {
		info[emp.ID] = employeeInfo{name: emp.Name, lunchMinutes: emp.LunchMinutes}
	}

	rows := make([]attendance.DailyRow, 0)
	for _, day := range days {
		dateStr := day.Date.Format("2006-01-02")
		for _, rec := range sortedRecords(day) {
			if filterEmployeeID != "" && filterEmployeeID != FilterAll && rec.EmployeeID != filterEmployeeID {
				continue
			}

			emp, known := info[rec.EmployeeID]
			if !known {
				emp = employeeInfo{name: "Unknown", lunchMinutes: defaultLunchMinutes}
			}

			row := attendance.DailyRow{
				Date:         dateStr,
				EmployeeID:   rec.EmployeeID,
				EmployeeName: emp.name,
				InTime:       rec.InTime,
				OutTime:      rec.OutTime,
				LunchIn:      rec.LunchIn,
				LunchOut:     rec.LunchOut,
			}

			worked, err := timeclock.WorkedMinutes(rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut, emp.lunchMinutes)
			if err != nil {
				msg := err.Error()
				row.Error = &msg
			} else {
				hours := roundHours(worked)
				row.WorkedHours = &hours
			}

			rows = append(rows, row)
		}
	}

	return rows
}

// sortedRecords returns a day's records in employee-ID order so output
// is stable across runs; map iteration order is not.
func sortedRecords(day attendance.Day) []attendance.ClockRecord {
	recs := make([]attendance.ClockRecord, 0, len(day.Records))
	for _, rec := range day.Records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].EmployeeID < recs[j].EmployeeID })
	return recs
}

// roundHours converts minutes to hours rounded to two decimals.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
