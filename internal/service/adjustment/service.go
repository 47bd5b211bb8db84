package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/pkg/tenant"
)

type AdjustmentServiceImpl struct {
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAdjustmentService(
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	// The adjustment must point at one of the account's employees.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, accountID); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	adj := adjustment.Adjustment{
		AccountID:   accountID,
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	}

	created, err := s.adjustmentRepo.Create(ctx, adj)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return mapToResponse(created), nil
}

// List implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) List(ctx context.Context, filter adjustment.AdjustmentFilter) ([]adjustment.AdjustmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)

	adjs, err := s.adjustmentRepo.ListRange(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]adjustment.AdjustmentResponse, 0, len(adjs))
	for _, adj := range adjs {
		if filter.EmployeeID != "" && filter.EmployeeID != "all" && adj.EmployeeID != filter.EmployeeID {
			continue
		}
		result = append(result, mapToResponse(adj))
	}
	return result, nil
}

// Update implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Update(ctx context.Context, req adjustment.UpdateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	current, err := s.adjustmentRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		current.Date = date
	}
	if req.Amount != nil {
		current.Amount = *req.Amount
	}
	if req.Description != nil {
		current.Description = *req.Description
	}

	if err := s.adjustmentRepo.Update(ctx, current); err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to update adjustment: %w", err)
	}

	updated, err := s.adjustmentRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return mapToResponse(updated), nil
}

// Delete implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Delete(ctx context.Context, id string) error {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.adjustmentRepo.Delete(ctx, id, accountID)
}

func mapToResponse(adj adjustment.Adjustment) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:          adj.ID,
		EmployeeID:  adj.EmployeeID,
		Date:        adj.Date.Format("2006-01-02"),
		Amount:      adj.Amount.StringFixed(2),
		Description: adj.Description,
	}
}
