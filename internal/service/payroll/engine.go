package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/pkg/timeclock"
)

// NegativeMinutesPolicy controls how a record whose out time precedes
// its in time is treated when summing attended minutes.
type NegativeMinutesPolicy int

const (
	// NegativeMinutesPassThrough keeps the negative value in the sum.
	NegativeMinutesPassThrough NegativeMinutesPolicy = iota
	// NegativeMinutesClampZero counts the record as zero minutes.
	NegativeMinutesClampZero
	// NegativeMinutesReject aborts the report naming the record.
	NegativeMinutesReject
)

// EngineOptions tune the report computation.
type EngineOptions struct {
	NegativeMinutes NegativeMinutesPolicy
}

var sixty = decimal.NewFromInt(60)

// ComputeReport produces one payroll line per employee for the period.
// It is a pure function of its inputs: no I/O, no shared state, safe
// to call concurrently. Attendance days and adjustments outside the
// period are ignored, so callers may pass wider snapshots.
//
// An unparseable clock time aborts the whole report; payroll totals
// are all-or-nothing for a period. A line whose expected minutes are
// zero is flagged via ReportLine.Err instead of dividing, and stays in
// the output so the order matches the input employee sequence exactly.
func ComputeReport(
	employees []employee.Employee,
	days []attendance.Day,
	adjustments []adjustment.Adjustment,
	period payroll.Period,
	opts EngineOptions,
) ([]payroll.ReportLine, error) {
	lines := make([]payroll.ReportLine, 0, len(employees))

	for _, emp := range employees {
		expected := decimal.NewFromFloat(emp.ShiftHours).
			Mul(sixty).
			Mul(decimal.NewFromInt(int64(period.Days())))

		attended := int64(0)
		for _, day := range days {
			if day.Date.Before(period.Start) || day.Date.After(period.End) {
				continue
			}
			rec, ok := day.Records[emp.ID]
			if !ok {
				// Absence contributes nothing; it is not an error.
				continue
			}

			worked, err := timeclock.WorkedMinutes(rec.InTime, rec.OutTime, rec.LunchIn, rec.LunchOut, emp.LunchMinutes)
			if err != nil {
				return nil, fmt.Errorf("attendance for employee %s on %s: %w",
					emp.ID, day.Date.Format("2006-01-02"), err)
			}

			if worked < 0 {
				switch opts.NegativeMinutes {
				case NegativeMinutesClampZero:
					worked = 0
				case NegativeMinutesReject:
					return nil, fmt.Errorf("attendance for employee %s on %s: %w",
						emp.ID, day.Date.Format("2006-01-02"), payroll.ErrNegativeWorkedMinutes)
				}
			}
			attended += int64(worked)
		}

		adjTotal := decimal.Zero
		for _, adj := range adjustments {
			if adj.EmployeeID != emp.ID {
				continue
			}
			if adj.Date.Before(period.Start) || adj.Date.After(period.End) {
				continue
			}
			adjTotal = adjTotal.Add(adj.Amount)
		}

		line := payroll.ReportLine{
			EmployeeID:      emp.ID,
			Name:            emp.Name,
			ExpectedMinutes: expected,
			AttendedMinutes: decimal.NewFromInt(attended),
			AdjustmentTotal: adjTotal,
		}

		if expected.IsZero() {
			line.Err = payroll.ErrZeroExpectedMinutes
			lines = append(lines, line)
			continue
		}

		line.ProratedBase = emp.MonthlySalary.Mul(line.AttendedMinutes).Div(expected)
		line.FinalPay = line.ProratedBase.Sub(adjTotal)
		lines = append(lines, line)
	}

	return lines, nil
}

// renderLine rounds a computed line to the two-decimal presentation
// form. Rounding happens here only; the engine keeps full precision.
func renderLine(line payroll.ReportLine) payroll.ReportLineResponse {
	resp := payroll.ReportLineResponse{
		EmployeeID:    line.EmployeeID,
		Name:          line.Name,
		ExpectedHours: line.ExpectedMinutes.Div(sixty).StringFixed(2),
		AttendedHours: line.AttendedMinutes.Div(sixty).StringFixed(2),
		RemainingHours: line.ExpectedMinutes.Sub(line.AttendedMinutes).
			Div(sixty).StringFixed(2),
		Adjustments: line.AdjustmentTotal.StringFixed(2),
	}

	if line.Err != nil {
		msg := line.Err.Error()
		resp.Error = &msg
		resp.BaseSalary = decimal.Zero.StringFixed(2)
		resp.FinalSalary = decimal.Zero.StringFixed(2)
		return resp
	}

	resp.BaseSalary = line.ProratedBase.StringFixed(2)
	resp.FinalSalary = line.FinalPay.StringFixed(2)
	return resp
}
