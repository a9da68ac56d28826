package domain

import (
	"errors"
	"time"
)

// Post is a user-authored article.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the post for persistence. Title is bounded by the
// VARCHAR(255) column; content must be non-trivial.
func (p *Post) Validate() error {
	if len(p.Title) < 3 || len(p.Title) > 255 {
		return errors.New("title must be between 3 and 255 characters")
	}
	if len(p.Content) < 3 {
		return errors.New("content must be at least 3 characters")
	}
	if p.UserID <= 0 {
		return errors.New("user_id must be positive")
	}
	return nil
}
