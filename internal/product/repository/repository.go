package repository

import (
	"context"

	"apidb/internal/product/domain"
)

// Repository defines persistence for products.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Create inserts the product and assigns the auto-increment ID to p.ID.
	Create(ctx context.Context, p *domain.Product) error
	// Update overwrites all product fields. Reports whether a row matched.
	Update(ctx context.Context, p *domain.Product) (bool, error)
	// Delete removes the product. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
