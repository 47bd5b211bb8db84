package adjustment

import "context"

type AdjustmentService interface {
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	List(ctx context.Context, filter AdjustmentFilter) ([]AdjustmentResponse, error)
	Update(ctx context.Context, req UpdateAdjustmentRequest) (AdjustmentResponse, error)
	Delete(ctx context.Context, id string) error
}
