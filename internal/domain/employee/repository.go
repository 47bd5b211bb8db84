package employee

import "context"

// EmployeeRepository defines data access for employees. All methods
// take accountID to keep tenants isolated at the query level.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, accountID string) (Employee, error)
	ListByAccountID(ctx context.Context, accountID string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string, accountID string) error
}
