package postapp

import (
	"context"
	"fmt"

	postEntity "github.com/Bishopxxx/Bishop-blog/internal/core/post"
	postPort "github.com/Bishopxxx/Bishop-blog/internal/ports/post"
)

// PostService covers the post lifecycle: create, list, read, edit, delete.
type PostService struct {
	repo postPort.PostRepository
}

func NewPostService(repo postPort.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Create persists a new post for the given author. The id and creation time
// are assigned by the store.
func (s *PostService) Create(ctx context.Context, title, content string, authorID uint) (*postEntity.Post, error) {
	p := &postEntity.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return p, nil
}

// List returns all posts, newest first, read fresh from the store.
func (s *PostService) List(ctx context.Context) ([]*postEntity.Post, error) {
	return s.repo.FindAll(ctx)
}

// Get loads one post; postPort.ErrPostNotFound for an unknown id.
func (s *PostService) Get(ctx context.Context, id uint) (*postEntity.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces title and content of an existing post.
func (s *PostService) Update(ctx context.Context, id uint, title, content string) (*postEntity.Post, error) {
	return s.repo.Update(ctx, id, title, content)
}

// Delete removes a post permanently.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
