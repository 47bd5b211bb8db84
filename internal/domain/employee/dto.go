package employee

import (
	"github.com/shopspring/decimal"
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	Designation   string          `json:"designation"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	ShiftHours    float64         `json:"shift_hours"`
	LunchMinutes  int             `json:"lunch_minutes"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.ShiftHours < 0 || r.ShiftHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_hours",
			Message: "shift_hours must be between 0 and 24",
		})
	}

	if r.LunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_minutes",
			Message: "lunch_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Designation   *string          `json:"designation,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	ShiftHours    *float64         `json:"shift_hours,omitempty"`
	LunchMinutes  *int             `json:"lunch_minutes,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.ShiftHours != nil && (*r.ShiftHours < 0 || *r.ShiftHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_hours",
			Message: "shift_hours must be between 0 and 24",
		})
	}

	if r.LunchMinutes != nil && *r.LunchMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lunch_minutes",
			Message: "lunch_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	MonthlySalary string `json:"monthly_salary"`
	ShiftHours    float64 `json:"shift_hours"`
	LunchMinutes  int    `json:"lunch_minutes"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
