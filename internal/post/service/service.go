// Package service implements post CRUD with author existence checks.
package service

import (
	"context"
	"errors"
	"log/slog"

	"apidb/internal/post/domain"
	postrepo "apidb/internal/post/repository"
	userdomain "apidb/internal/user/domain"
)

// Sentinel errors for the post service; handlers map them to HTTP status codes.
var (
	ErrNotFound       = errors.New("post not found")
	ErrAuthorNotFound = errors.New("post author not found")
)

// UserGetter is the minimal user repository needed by the post service.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*userdomain.User, error)
}

// Service implements post CRUD. Writes verify the author exists before
// touching the posts table so callers see ErrAuthorNotFound instead of a
// foreign-key failure.
type Service struct {
	repo  postrepo.Repository
	users UserGetter
	log   *slog.Logger
}

// New returns a Service with the given dependencies.
func New(repo postrepo.Repository, users UserGetter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, users: users, log: log}
}

// List returns all posts.
func (s *Service) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("listed posts", "count", len(posts))
	return posts, nil
}

// ListByUser returns all posts authored by userID. An unknown user yields an
// empty list, not an error.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get returns the post for id. Returns ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create inserts a new post after verifying the author exists.
func (s *Service) Create(ctx context.Context, title, content string, userID int64) (*domain.Post, error) {
	p := &domain.Post{Title: title, Content: content, UserID: userID}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("created post", "post_id", p.ID, "user_id", userID)
	return p, nil
}

// Update overwrites the post with id. Returns ErrNotFound for unknown posts
// and ErrAuthorNotFound when the new author does not exist.
func (s *Service) Update(ctx context.Context, id int64, title, content string, userID int64) (*domain.Post, error) {
	p := &domain.Post{ID: id, Title: title, Content: content, UserID: userID}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, userID); err != nil {
		return nil, err
	}
	matched, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}
	s.log.Info("updated post", "post_id", id)
	return p, nil
}

// Delete removes the post with id. Returns ErrNotFound for unknown ids.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info("deleted post", "post_id", id)
	return nil
}

func (s *Service) checkAuthor(ctx context.Context, userID int64) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrAuthorNotFound
	}
	return nil
}
