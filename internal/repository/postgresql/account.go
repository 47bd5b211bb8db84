package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workshophq/workforce-backend-go/internal/domain/account"
	"github.com/workshophq/workforce-backend-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements account.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, acc account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	acc.ID = uuid.NewString()

	query := `
		INSERT INTO accounts (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, acc.ID, acc.Name, acc.Email, acc.PasswordHash).
		Scan(&acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return acc, nil
}

// GetByID implements account.AccountRepository.
func (r *accountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, id).Scan(
		&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return acc, nil
}

// GetByEmail implements account.AccountRepository.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var acc account.Account
	err := q.QueryRow(ctx, query, email).Scan(
		&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return acc, nil
}
