package payroll

import "context"

type PayrollService interface {
	// MonthlyReport computes one payroll line per employee for a whole
	// calendar month.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) ([]ReportLineResponse, error)

	// PeriodReport computes the same report over an arbitrary
	// inclusive date range.
	PeriodReport(ctx context.Context, req PeriodReportRequest) ([]ReportLineResponse, error)

	// GeneratePayslipPDF writes a payslip for one employee's monthly
	// line and returns the file path.
	GeneratePayslipPDF(ctx context.Context, req PayslipRequest) (string, error)
}
