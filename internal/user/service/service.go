// Package service implements user lifecycle on top of the user repository.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"apidb/internal/security"
	"apidb/internal/user/domain"
	userrepo "apidb/internal/user/repository"
)

// Sentinel errors for the user service; handlers map them to HTTP status codes.
var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrBadEmail   = errors.New("invalid email address")
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service implements user CRUD with normalized emails and bcrypt-hashed passwords.
type Service struct {
	repo   userrepo.Repository
	hasher *security.Hasher
	log    *slog.Logger
}

// New returns a Service with the given dependencies.
func New(repo userrepo.Repository, hasher *security.Hasher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, hasher: hasher, log: log}
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("listed users", "count", len(users))
	return users, nil
}

// Get returns the user for id. Returns ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Create registers a new user. The email is trimmed and lowercased; the
// password is stored as a bcrypt hash. Returns ErrEmailTaken when the email is
// already registered and ErrBadEmail for malformed addresses.
func (s *Service) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	email, err := s.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{Name: strings.TrimSpace(name), Email: email, PasswordHash: hash}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if userrepo.IsDuplicateEntry(err) {
			// Lost the race against a concurrent insert with the same email.
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.log.Info("created user", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Update overwrites name, email, and password for the user with id.
// Returns ErrNotFound for unknown ids and ErrEmailTaken when the new email
// belongs to a different user.
func (s *Service) Update(ctx context.Context, id int64, name, email, password string) (*domain.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	email, err = s.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if email != current.Email {
		other, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrEmailTaken
		}
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{ID: id, Name: strings.TrimSpace(name), Email: email, PasswordHash: hash}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	matched, err := s.repo.Update(ctx, u)
	if err != nil {
		if userrepo.IsDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if !matched {
		return nil, ErrNotFound
	}
	s.log.Info("updated user", "user_id", id)
	return u, nil
}

// Delete removes the user with id. Returns ErrNotFound for unknown ids.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info("deleted user", "user_id", id)
	return nil
}

func (s *Service) normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRe.MatchString(email) {
		return "", ErrBadEmail
	}
	return email, nil
}
