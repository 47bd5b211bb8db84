package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment is a manual signed pay correction for one employee on one
// date. Positive amounts are advances/payments already made and are
// subtracted from the final salary; negative amounts add to it.
type Adjustment struct {
	ID          string
	AccountID   string
	EmployeeID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
