package userapp

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Bishopxxx/Bishop-blog/internal/core/password"
	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
	userPort "github.com/Bishopxxx/Bishop-blog/internal/ports/user"
)

var (
	// ErrUnknownEmail means no account exists for the given email.
	ErrUnknownEmail = errors.New("no account with that email")
	// ErrWrongPassword means the account exists but the credential check failed.
	ErrWrongPassword = errors.New("incorrect password")
)

// UserService covers signup, login and loading the current user.
type UserService struct {
	repo   userPort.UserRepository
	logger *zap.Logger
}

func NewUserService(repo userPort.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new account with a hashed credential. Duplicate email
// or username is reported as the matching conflict error and nothing is
// persisted.
func (s *UserService) Register(ctx context.Context, email, username, firstname, lastname, plaintext string) (*userEntity.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, userPort.ErrEmailTaken
	} else if !errors.Is(err, userPort.ErrUserNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, userPort.ErrUsernameTaken
	} else if !errors.Is(err, userPort.ErrUserNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	credential, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &userEntity.User{
		Username:  username,
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Password:  credential,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", u.ID),
		zap.String("username", u.Username),
	)
	return u, nil
}

// Authenticate checks an email/password pair. An unknown email and a wrong
// password are distinct outcomes so the login form can tell them apart.
func (s *UserService) Authenticate(ctx context.Context, email, plaintext string) (*userEntity.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userPort.ErrUserNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !password.Verify(plaintext, u.Password) {
		s.logger.Warn("failed login", zap.String("email", email))
		return nil, ErrWrongPassword
	}
	return u, nil
}

// GetByID loads a user, typically to reconstitute the session's current user.
func (s *UserService) GetByID(ctx context.Context, id uint) (*userEntity.User, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteAccount removes a user together with every post they authored, as a
// single transaction.
func (s *UserService) DeleteAccount(ctx context.Context, id uint) error {
	if err := s.repo.DeleteWithPosts(ctx, id); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	s.logger.Info("account deleted", zap.Uint("user_id", id))
	return nil
}
