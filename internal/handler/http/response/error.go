package response

import (
	"errors"
	"net/http"

	"github.com/workshophq/workforce-backend-go/internal/domain/account"
	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/domain/attendance"
	"github.com/workshophq/workforce-backend-go/internal/domain/auth"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/domain/payroll"
	"github.com/workshophq/workforce-backend-go/internal/pkg/timeclock"
	"github.com/workshophq/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A malformed clock time in stored data aborts the report; the
	// error names the offending employee, date and field.
	var parseErr *timeclock.ParseError
	if errors.As(err, &parseErr) {
		UnprocessableEntity(w, err.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "No attendance found for that date")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNegativeWorkedMinutes):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, payroll.ErrZeroExpectedMinutes):
		UnprocessableEntity(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
