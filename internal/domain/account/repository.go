package account

import "context"

type AccountRepository interface {
	Create(ctx context.Context, acc Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
}
