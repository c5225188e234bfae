package users

import "context"

type Repository interface {
	// Create falla con ErrDuplicateUsername / ErrDuplicateEmail si ya existen.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
