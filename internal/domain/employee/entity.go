package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	AccountID   string
	Name        string
	Designation string
	// MonthlySalary is the contracted salary for a full month of
	// attendance; payroll prorates it by attended vs expected minutes.
	MonthlySalary decimal.Decimal
	// ShiftHours is the contracted working hours per calendar day.
	ShiftHours float64
	// LunchMinutes is the daily break allowance; break time beyond it
	// is deducted from worked minutes.
	LunchMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
