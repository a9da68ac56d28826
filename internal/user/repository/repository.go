package repository

import (
	"context"

	"apidb/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Create inserts the user and assigns the auto-increment ID to u.ID.
	Create(ctx context.Context, u *domain.User) error
	// Update overwrites name, email, and password hash. Reports whether a row matched.
	Update(ctx context.Context, u *domain.User) (bool, error)
	// Delete removes the user. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
