package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListByAccountID(_ context.Context, _ string) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (s *stubEmployeeRepo) Delete(_ context.Context, _ string, _ string) error { return nil }

type stubAttendanceRepo struct {
	days []attendance.Day
}

func (s *stubAttendanceRepo) UpsertDay(_ context.Context, day attendance.Day) (attendance.Day, error) {
	return day, nil
}

func (s *stubAttendanceRepo) GetByDate(_ context.Context, _ string, _ time.Time) (attendance.Day, error) {
	return attendance.Day{}, attendance.ErrDayNotFound
}

func (s *stubAttendanceRepo) ListRange(_ context.Context, _ string, start, end time.Time) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, day := range s.days {
		if day.Date.Before(start) || day.Date.After(end) {
			continue
		}
		out = append(out, day)
	}
	return out, nil
}

func (s *stubAttendanceRepo) UpdateRecord(_ context.Context, _ string, _ time.Time, _ attendance.ClockRecord) error {
	return nil
}

func (s *stubAttendanceRepo) DeleteRecord(_ context.Context, _ string, _ time.Time, _ string) error {
	return nil
}

type stubAdjustmentRepo struct {
	adjustments []adjustment.Adjustment
}

func (s *stubAdjustmentRepo) Create(_ context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	return adj, nil
}

func (s *stubAdjustmentRepo) GetByID(_ context.Context, _ string, _ string) (adjustment.Adjustment, error) {
	return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
}

func (s *stubAdjustmentRepo) ListRange(_ context.Context, _ string, start, end time.Time) ([]adjustment.Adjustment, error) {
	var out []adjustment.Adjustment
	for _, adj := range s.adjustments {
		if adj.Date.Before(start) || adj.Date.After(end) {
			continue
		}
		out = append(out, adj)
	}
	return out, nil
}

func (s *stubAdjustmentRepo) ListByEmployee(_ context.Context, _ string, _ string) ([]adjustment.Adjustment, error) {
	return nil, nil
}

func (s *stubAdjustmentRepo) Update(_ context.Context, _ adjustment.Adjustment) error { return nil }

func (s *stubAdjustmentRepo) Delete(_ context.Context, _ string, _ string) error { return nil }

func payrollContext(t *testing.T, accountID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{"account_id": accountID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestMonthlyReport_RendersRoundedFigures(t *testing.T) {
	emp := fullMonthEmployee()
	svc := NewPayrollService(
		&stubEmployeeRepo{employees: []employee.Employee{emp}},
		&stubAttendanceRepo{days: juneDays(emp.ID)},
		&stubAdjustmentRepo{adjustments: []adjustment.Adjustment{
			{ID: "adj-1", EmployeeID: emp.ID, Date: date("2025-06-15"), Amount: decimal.NewFromInt(500)},
		}},
		EngineOptions{},
		t.TempDir(),
	)

	lines, err := svc.MonthlyReport(payrollContext(t, "acc-1"), payroll.MonthlyReportRequest{Month: "2025-06"})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, emp.ID, lines[0].EmployeeID)
	assert.Equal(t, "240.00", lines[0].ExpectedHours)
	assert.Equal(t, "255.00", lines[0].AttendedHours)
	assert.Equal(t, "31875.00", lines[0].BaseSalary)
	assert.Equal(t, "500.00", lines[0].Adjustments)
	assert.Equal(t, "31375.00", lines[0].FinalSalary)
}

func TestMonthlyReport_RejectsMalformedMonth(t *testing.T) {
	svc := NewPayrollService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubAdjustmentRepo{}, EngineOptions{}, t.TempDir())

	_, err := svc.MonthlyReport(payrollContext(t, "acc-1"), payroll.MonthlyReportRequest{Month: "June 2025"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestPeriodReport_MatchesMonthlyForSameRange(t *testing.T) {
	emp := fullMonthEmployee()
	svc := NewPayrollService(
		&stubEmployeeRepo{employees: []employee.Employee{emp}},
		&stubAttendanceRepo{days: juneDays(emp.ID)},
		&stubAdjustmentRepo{},
		EngineOptions{},
		t.TempDir(),
	)
	ctx := payrollContext(t, "acc-1")

	monthly, err := svc.MonthlyReport(ctx, payroll.MonthlyReportRequest{Month: "2025-06"})
	require.NoError(t, err)

	period, err := svc.PeriodReport(ctx, payroll.PeriodReportRequest{From: "2025-06-01", To: "2025-06-30"})
	require.NoError(t, err)

	assert.Equal(t, monthly, period)
}

func TestGeneratePayslipPDF_WritesFile(t *testing.T) {
	emp := fullMonthEmployee()
	dir := t.TempDir()
	svc := NewPayrollService(
		&stubEmployeeRepo{employees: []employee.Employee{emp}},
		&stubAttendanceRepo{days: juneDays(emp.ID)},
		&stubAdjustmentRepo{},
		EngineOptions{},
		dir,
	)

	path, err := svc.GeneratePayslipPDF(payrollContext(t, "acc-1"), payroll.PayslipRequest{
		Month:      "2025-06",
		EmployeeID: emp.ID,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGeneratePayslipPDF_UnknownEmployee(t *testing.T) {
	svc := NewPayrollService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubAdjustmentRepo{}, EngineOptions{}, t.TempDir())

	_, err := svc.GeneratePayslipPDF(payrollContext(t, "acc-1"), payroll.PayslipRequest{
		Month:      "2025-06",
		EmployeeID: "ghost",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
