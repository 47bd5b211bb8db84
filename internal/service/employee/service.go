package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/pkg/tenant"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		AccountID:     accountID,
		Name:          req.Name,
		Designation:   req.Designation,
		MonthlySalary: req.MonthlySalary,
		ShiftHours:    req.ShiftHours,
		LunchMinutes:  req.LunchMinutes,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, accountID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	emps, err := s.employeeRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID, accountID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Designation != nil {
		current.Designation = *req.Designation
	}
	if req.MonthlySalary != nil {
		current.MonthlySalary = *req.MonthlySalary
	}
	if req.ShiftHours != nil {
		current.ShiftHours = *req.ShiftHours
	}
	if req.LunchMinutes != nil {
		current.LunchMinutes = *req.LunchMinutes
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	accountID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id, accountID)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Designation:   emp.Designation,
		MonthlySalary: emp.MonthlySalary.StringFixed(2),
		ShiftHours:    emp.ShiftHours,
		LunchMinutes:  emp.LunchMinutes,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     emp.UpdatedAt.Format(time.RFC3339),
	}
}
