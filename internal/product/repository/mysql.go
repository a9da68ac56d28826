package repository

import (
	"context"
	"database/sql"
	"errors"

	"apidb/internal/product/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository returns a product repository that uses the given db for persistence.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// GetByID returns the product for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *MySQLRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, quantity FROM products WHERE id = ?`, id)
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns all products ordered by id.
func (r *MySQLRepository) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, price, quantity FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Create persists the product and assigns the auto-increment ID to p.ID.
func (r *MySQLRepository) Create(ctx context.Context, p *domain.Product) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, description, price, quantity) VALUES (?, ?, ?, ?)`,
		p.Name, p.Description, p.Price, p.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update overwrites the product record. Reports whether a row matched p.ID.
func (r *MySQLRepository) Update(ctx context.Context, p *domain.Product) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ?, quantity = ? WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Quantity, p.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the product. Reports whether a row was deleted.
func (r *MySQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
