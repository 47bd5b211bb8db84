package payroll

import (
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

// ReportLineResponse renders one payroll line with hour and money
// figures as two-decimal strings.
type ReportLineResponse struct {
	EmployeeID     string  `json:"emp_id"`
	Name           string  `json:"name"`
	ExpectedHours  string  `json:"expected_hours"`
	AttendedHours  string  `json:"attended_hours"`
	RemainingHours string  `json:"remaining_hours"`
	BaseSalary     string  `json:"base_salary"`
	Adjustments    string  `json:"adjustments"`
	FinalSalary    string  `json:"final_salary"`
	Error          *string `json:"error,omitempty"`
}

// MonthlyReportRequest selects a whole calendar month.
type MonthlyReportRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PeriodReportRequest selects an arbitrary inclusive date range.
type PeriodReportRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, validFrom := validator.IsValidDate(r.From)
	if !validFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, validTo := validator.IsValidDate(r.To)
	if !validTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if validFrom && validTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayslipRequest identifies one employee's payslip for a month.
type PayslipRequest struct {
	Month      string `json:"month"` // YYYY-MM
	EmployeeID string `json:"employee_id"`
}

func (r *PayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
