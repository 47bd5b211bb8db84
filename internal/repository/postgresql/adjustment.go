package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/adjustment"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	adj.ID = uuid.NewString()

	query := `
		INSERT INTO adjustments (id, account_id, employee_id, date, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		adj.ID, adj.AccountID, adj.EmployeeID, adj.Date, adj.Amount, adj.Description,
	).Scan(&adj.CreatedAt, &adj.UpdatedAt)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return adj, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string, accountID string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, employee_id, date, amount, description, created_at, updated_at
		FROM adjustments
		WHERE id = $1 AND account_id = $2
	`

	var adj adjustment.Adjustment
	err := q.QueryRow(ctx, query, id, accountID).Scan(
		&adj.ID, &adj.AccountID, &adj.EmployeeID, &adj.Date,
		&adj.Amount, &adj.Description, &adj.CreatedAt, &adj.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, fmt.Errorf("failed to get adjustment by ID: %w", err)
	}

	return adj, nil
}

// ListRange implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListRange(ctx context.Context, accountID string, start, end time.Time) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, employee_id, date, amount, description, created_at, updated_at
		FROM adjustments
		WHERE account_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

// ListByEmployee implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListByEmployee(ctx context.Context, accountID string, employeeID string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, employee_id, date, amount, description, created_at, updated_at
		FROM adjustments
		WHERE account_id = $1 AND employee_id = $2
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, accountID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments by employee: %w", err)
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

// Update implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Update(ctx context.Context, adj adjustment.Adjustment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustments
		SET date = $1, amount = $2, description = $3, updated_at = NOW()
		WHERE id = $4 AND account_id = $5
	`

	tag, err := q.Exec(ctx, query, adj.Date, adj.Amount, adj.Description, adj.ID, adj.AccountID)
	if err != nil {
		return fmt.Errorf("failed to update adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}

// Delete implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Delete(ctx context.Context, id string, accountID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM adjustments WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}

func scanAdjustments(rows pgx.Rows) ([]adjustment.Adjustment, error) {
	var adjs []adjustment.Adjustment
	for rows.Next() {
		var adj adjustment.Adjustment
		if err := rows.Scan(
			&adj.ID, &adj.AccountID, &adj.EmployeeID, &adj.Date,
			&adj.Amount, &adj.Description, &adj.CreatedAt, &adj.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjs = append(adjs, adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adjustments: %w", err)
	}
	return adjs, nil
}
