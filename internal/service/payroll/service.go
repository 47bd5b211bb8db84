package payroll

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/pkg/tenant"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	adjustmentRepo adjustment.AdjustmentRepository
	opts           EngineOptions
	payslipDir     string
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	opts EngineOptions,
	payslipDir string,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		adjustmentRepo: adjustmentRepo,
		opts:           opts,
		payslipDir:     payslipDir,
	}
}

// snapshot is the fully materialized input the engine aggregates over.
// The three reads are independent, so they run in parallel and must
// all land before computation starts.
type snapshot struct {
	employees   []employee.Employee
	days        []attendance.Day
	adjustments []adjustment.Adjustment
}

func (s *PayrollServiceImpl) loadSnapshot(ctx context.Context, accountID string, period payroll.Period) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		emps, err := s.employeeRepo.ListByAccountID(gctx, accountID)
		if err != nil {
			return fmt.Errorf("load employees: %w", err)
		}
		snap.employees = emps
		return nil
	})
	g.Go(func() error {
		days, err := s.attendanceRepo.ListRange(gctx, accountID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("load attendance: %w", err)
		}
		snap.days = days
		return nil
	})
	g.Go(func() error {
		adjs, err := s.adjustmentRepo.ListRange(gctx, accountID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("load adjustments: %w", err)
		}
		snap.adjustments = adjs
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (s *PayrollServiceImpl) report(ctx context.Context, accountID string, period payroll.Period) ([]payroll.ReportLineResponse, error) {
	snap, err := s.loadSnapshot(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	lines, err := ComputeReport(snap.employees, snap.days, snap.adjustments, period, s.opts)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.ReportLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, renderLine(line))
	}
	return result, nil
}

// MonthlyReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyReport(ctx context.Context, req payroll.MonthlyReportRequest) ([]payroll.ReportLineResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.report(ctx, accountID, monthPeriod(req.Month))
}

// PeriodReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) PeriodReport(ctx context.Context, req payroll.PeriodReportRequest) ([]payroll.ReportLineResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.From)
	end, _ := time.Parse("2006-01-02", req.To)
	return s.report(ctx, accountID, payroll.Period{Start: start, End: end})
}

// monthPeriod expands "YYYY-MM" to the first and last day of the month.
func monthPeriod(month string) payroll.Period {
	start, _ := time.Parse("2006-01", month)
	end := start.AddDate(0, 1, -1)
	return payroll.Period{Start: start, End: end}
}
