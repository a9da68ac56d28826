package repository

import (
	"context"

	"apidb/internal/post/domain"
)

// Repository defines persistence for posts.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	// ListByUser returns all posts authored by the given user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	// Create inserts the post and assigns the auto-increment ID to p.ID.
	Create(ctx context.Context, p *domain.Post) error
	// Update overwrites title, content, and author. Reports whether a row matched.
	Update(ctx context.Context, p *domain.Post) (bool, error)
	// Delete removes the post. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
