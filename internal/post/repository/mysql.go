package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"apidb/internal/post/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository returns a post repository that uses the given db for persistence.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// GetByID returns the post for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *MySQLRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, user_id, created_at, updated_at FROM posts WHERE id = ?`, id)
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns all posts ordered by id.
func (r *MySQLRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.queryPosts(ctx,
		`SELECT id, title, content, user_id, created_at, updated_at FROM posts ORDER BY id`)
}

// ListByUser returns all posts authored by userID, newest first.
func (r *MySQLRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return r.queryPosts(ctx,
		`SELECT id, title, content, user_id, created_at, updated_at FROM posts WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
}

// Create persists the post and assigns the auto-increment ID to p.ID.
// CreatedAt and UpdatedAt are set to now (UTC) on p.
func (r *MySQLRepository) Create(ctx context.Context, p *domain.Post) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Content, p.UserID, now, now)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

// Update overwrites the post record and bumps updated_at. Reports whether a row matched p.ID.
func (r *MySQLRepository) Update(ctx context.Context, p *domain.Post) (bool, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, user_id = ?, updated_at = ? WHERE id = ?`,
		p.Title, p.Content, p.UserID, now, p.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	p.UpdatedAt = now
	return n > 0, nil
}

// Delete removes the post. Reports whether a row was deleted.
func (r *MySQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MySQLRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
