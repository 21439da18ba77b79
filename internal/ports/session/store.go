package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a token is unknown or has expired.
var ErrNoSession = errors.New("no such session")

// TokenStore is the outbound port for the server-side session state: an
// opaque token mapped to a user id, expiring after the configured TTL.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}
