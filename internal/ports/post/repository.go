package post

import (
	"context"
	"errors"

	"github.com/Bishopxxx/Bishop-blog/internal/core/post"
)

// ErrPostNotFound is returned when a post id does not resolve to a record.
// Any other repository error is a persistence failure.
var ErrPostNotFound = errors.New("post not found")

// PostRepository is the outbound port for persisting and loading posts.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) error
	FindByID(ctx context.Context, id uint) (*post.Post, error)

	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*post.Post, error)

	// Update replaces title and content of an existing post; id, author
	// and creation time stay untouched.
	Update(ctx context.Context, id uint, title, content string) (*post.Post, error)

	Delete(ctx context.Context, id uint) error
}
