package attendance

import (
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

type ClockRecordInput struct {
	EmployeeID string `json:"employee_id"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	LunchIn    string `json:"lunch_in"`
	LunchOut   string `json:"lunch_out"`
}

func (r *ClockRecordInput) validate(errs validator.ValidationErrors) validator.ValidationErrors {
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	fields := map[string]string{
		"in_time":   r.InTime,
		"out_time":  r.OutTime,
		"lunch_in":  r.LunchIn,
		"lunch_out": r.LunchOut,
	}
	for field, value := range fields {
		if !validator.IsValidClockTime(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a 24-hour HH:MM time",
			})
		}
	}

	return errs
}

// SaveDayRequest replaces or merges the records of one attendance day.
type SaveDayRequest struct {
	Date    string             `json:"date"` // YYYY-MM-DD
	Records []ClockRecordInput `json:"records"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one record is required",
		})
	}

	seen := make(map[string]bool, len(r.Records))
	for i := range r.Records {
		errs = r.Records[i].validate(errs)
		if seen[r.Records[i].EmployeeID] {
			errs = append(errs, validator.ValidationError{
				Field:   "records",
				Message: "duplicate record for employee " + r.Records[i].EmployeeID,
			})
		}
		seen[r.Records[i].EmployeeID] = true
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRecordRequest replaces all four time fields of one employee's
// record on one date. Partial updates are not offered: a record is
// always written whole so readers never observe a half-applied edit.
type UpdateRecordRequest struct {
	Date       string `json:"date"` // YYYY-MM-DD
	EmployeeID string `json:"employee_id"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	LunchIn    string `json:"lunch_in"`
	LunchOut   string `json:"lunch_out"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	rec := ClockRecordInput{
		EmployeeID: r.EmployeeID,
		InTime:     r.InTime,
		OutTime:    r.OutTime,
		LunchIn:    r.LunchIn,
		LunchOut:   r.LunchOut,
	}
	errs = rec.validate(errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockRecordResponse struct {
	EmployeeID string `json:"employee_id"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	LunchIn    string `json:"lunch_in"`
	LunchOut   string `json:"lunch_out"`
}

type DayResponse struct {
	Date    string                `json:"date"`
	Records []ClockRecordResponse `json:"records"`
}

// DailyRow is one flattened (date, employee) attendance row for the
// audit view. WorkedHours is omitted and Error set when the raw clock
// strings cannot be parsed; the rest of the report still renders.
type DailyRow struct {
	Date         string   `json:"date"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee"`
	InTime       string   `json:"in_time"`
	OutTime      string   `json:"out_time"`
	LunchIn      string   `json:"lunch_in"`
	LunchOut     string   `json:"lunch_out"`
	WorkedHours  *float64 `json:"worked_hours,omitempty"`
	Error        *string  `json:"error,omitempty"`
}

// DailyReportFilter selects the flatten range and optionally a single
// employee. EmployeeID "" or "all" means every employee.
type DailyReportFilter struct {
	From       string `json:"from"` // YYYY-MM-DD
	To         string `json:"to"`   // YYYY-MM-DD
	EmployeeID string `json:"employee_id"`
}

func (f *DailyReportFilter) Validate() error {
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
