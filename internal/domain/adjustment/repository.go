package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id string, accountID string) (Adjustment, error)
	ListRange(ctx context.Context, accountID string, start, end time.Time) ([]Adjustment, error)
	ListByEmployee(ctx context.Context, accountID string, employeeID string) ([]Adjustment, error)
	Update(ctx context.Context, adj Adjustment) error
	Delete(ctx context.Context, id string, accountID string) error
}
