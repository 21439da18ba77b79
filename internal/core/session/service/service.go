package sessionapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	sessionEntity "github.com/Bishopxxx/Bishop-blog/internal/core/session"
	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
	sessionPort "github.com/Bishopxxx/Bishop-blog/internal/ports/session"
	userPort "github.com/Bishopxxx/Bishop-blog/internal/ports/user"
)

// UserLoader resolves a stored identity back to a full user record.
type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*userEntity.User, error)
}

// Manager tracks the "current user" across requests. A login stores the
// user's identity under a fresh opaque token; the token travels in a cookie
// and expires server-side after the TTL.
type Manager struct {
	store sessionPort.TokenStore
	users UserLoader
	ttl   time.Duration
}

func NewManager(store sessionPort.TokenStore, users UserLoader, ttl time.Duration) *Manager {
	return &Manager{store: store, users: users, ttl: ttl}
}

// Start opens an authenticated session and returns its token.
func (m *Manager) Start(ctx context.Context, who sessionEntity.Identifiable) (string, error) {
	token, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	if err := m.store.Save(ctx, token.String(), who.SessionIdentity(), m.ttl); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return token.String(), nil
}

// Destroy ends a session. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Resolve maps a token to its user. An empty or unknown token, an expired
// session, or an identity that no longer resolves to a record all yield
// (nil, nil): the request is simply anonymous.
func (m *Manager) Resolve(ctx context.Context, token string) (*userEntity.User, error) {
	if token == "" {
		return nil, nil
	}

	userID, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionPort.ErrNoSession) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userPort.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading session user: %w", err)
	}
	return u, nil
}
