package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Bishopxxx/Bishop-blog/internal/core/post"
	postPort "github.com/Bishopxxx/Bishop-blog/internal/ports/post"
)

// PostRepositoryDatabase implements the post port on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) error {
	return repo.db.WithContext(ctx).Create(p).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("Author").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postPort.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post, newest first. The id tiebreak keeps the order
// stable when two posts share a timestamp tick.
func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("date_created DESC").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update replaces title and content in place. Author and creation time are
// never touched.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, id uint, title, content string) (*post.Post, error) {
	res := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, postPort.ErrPostNotFound
	}
	return repo.FindByID(ctx, id)
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	res := repo.db.WithContext(ctx).Delete(&post.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return postPort.ErrPostNotFound
	}
	return nil
}
