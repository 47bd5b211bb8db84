package adjustment

import (
	"github.com/shopspring/decimal"
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

type CreateAdjustmentRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAdjustmentRequest struct {
	ID          string           `json:"-"`
	Date        *string          `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Amount != nil && r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdjustmentResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// AdjustmentFilter selects adjustments by date range and optionally by
// employee.
type AdjustmentFilter struct {
	From       string `json:"from"` // YYYY-MM-DD
	To         string `json:"to"`   // YYYY-MM-DD
	EmployeeID string `json:"employee_id"`
}

func (f *AdjustmentFilter) Validate() error {
	var errs validator.ValidationErrors

	from, validFrom := validator.IsValidDate(f.From)
	if !validFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, validTo := validator.IsValidDate(f.To)
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
