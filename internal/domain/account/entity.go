package account

import "time"

// Account is an administrative tenant. Every employee, attendance day
// and adjustment belongs to exactly one account; there is no
// cross-account visibility.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
