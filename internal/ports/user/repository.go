package user

import (
	"context"
	"errors"

	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

var (
	// ErrUserNotFound is returned by the finders when no record matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken and ErrUsernameTaken signal uniqueness conflicts at signup.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository is the outbound port for persisting and loading users.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)

	// DeleteWithPosts removes a user and all their posts in one
	// transaction, posts first.
	DeleteWithPosts(ctx context.Context, id uint) error
}
