package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/employee"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.NewString()

	query := `
		INSERT INTO employees (id, account_id, name, designation, monthly_salary, shift_hours, lunch_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.AccountID,
		emp.Name,
		emp.Designation,
		emp.MonthlySalary,
		emp.ShiftHours,
		emp.LunchMinutes,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, accountID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, name, designation, monthly_salary, shift_hours, lunch_minutes,
		       created_at, updated_at
		FROM employees
		WHERE id = $1 AND account_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, accountID).Scan(
		&emp.ID, &emp.AccountID, &emp.Name, &emp.Designation,
		&emp.MonthlySalary, &emp.ShiftHours, &emp.LunchMinutes,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// ListByAccountID implements employee.EmployeeRepository.
func (r *employeeRepository) ListByAccountID(ctx context.Context, accountID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, name, designation, monthly_salary, shift_hours, lunch_minutes,
		       created_at, updated_at
		FROM employees
		WHERE account_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var emps []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.AccountID, &emp.Name, &emp.Designation,
			&emp.MonthlySalary, &emp.ShiftHours, &emp.LunchMinutes,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emps = append(emps, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return emps, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, designation = $2, monthly_salary = $3, shift_hours = $4,
		    lunch_minutes = $5, updated_at = NOW()
		WHERE id = $6 AND account_id = $7
	`

	tag, err := q.Exec(ctx, query,
		emp.Name, emp.Designation, emp.MonthlySalary, emp.ShiftHours,
		emp.LunchMinutes, emp.ID, emp.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string, accountID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
