package account

import "context"

// Repository describes account persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) error
	Delete(ctx context.Context, userID int64) error
}
