package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/pkg/tenant"
)

// GeneratePayslipPDF implements payroll.PayrollService. The payslip is
// rendered from the employee's freshly computed monthly report line,
// never from stored figures.
func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, req payroll.PayslipRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return "", err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, accountID)
	if err != nil {
		return "", err
	}

	period := monthPeriod(req.Month)
	snap, err := s.loadSnapshot(ctx, accountID, period)
	if err != nil {
		return "", err
	}

	lines, err := ComputeReport(snap.employees, snap.days, snap.adjustments, period, s.opts)
	if err != nil {
		return "", err
	}

	var line *payroll.ReportLine
	for i := range lines {
		if lines[i].EmployeeID == req.EmployeeID {
			line = &lines[i]
			break
		}
	}
	if line == nil {
		return "", fmt.Errorf("no report line for employee %s", req.EmployeeID)
	}
	if line.Err != nil {
		return "", fmt.Errorf("payslip for employee %s: %w", req.EmployeeID, line.Err)
	}

	if err := os.MkdirAll(s.payslipDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.payslipDir, fmt.Sprintf("%s-%s.pdf", req.EmployeeID, req.Month))

	rendered := renderLine(*line)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", emp.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Expected hours: %s", rendered.ExpectedHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attended hours: %s", rendered.AttendedHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Prorated base: %s", rendered.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Adjustments: %s", rendered.Adjustments))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", rendered.FinalSalary))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	return filePath, nil
}
