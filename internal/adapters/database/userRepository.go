package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	postEntity "github.com/Bishopxxx/Bishop-blog/internal/core/post"
	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
	userPort "github.com/Bishopxxx/Bishop-blog/internal/ports/user"
)

// UserRepositoryDatabase implements the user port on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) error {
	return repo.db.WithContext(ctx).Create(u).Error
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *UserRepositoryDatabase) findOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteWithPosts removes the user's posts and then the user inside one
// transaction, so a failure leaves both tables untouched.
func (repo *UserRepositoryDatabase) DeleteWithPosts(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author = ?", id).Delete(&postEntity.Post{}).Error; err != nil {
			return fmt.Errorf("deleting posts: %w", err)
		}
		res := tx.Delete(&user.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("deleting user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return userPort.ErrUserNotFound
		}
		return nil
	})
}
