package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/database"
	"github.com/Bishopxxx/Bishop-blog/internal/core/post"
	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
	userPort "github.com/Bishopxxx/Bishop-blog/internal/ports/user"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := database.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	u := &user.User{
		Username:  "a",
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "a@x.com",
		Password:  "credential",
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "a", byEmail.Username)

	byUsername, err := repo.FindByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byUsername.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepositoryNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := database.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, userPort.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "missing")
	assert.ErrorIs(t, err, userPort.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, userPort.ErrUserNotFound)
}

func TestUserRepositoryUniqueColumns(t *testing.T) {
	db := newTestDB(t)
	repo := database.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	newTestUser(t, db, "a", "a@x.com")

	dupEmail := &user.User{Username: "b", Firstname: "B", Lastname: "B", Email: "a@x.com", Password: "x"}
	assert.Error(t, repo.Create(ctx, dupEmail))

	dupUsername := &user.User{Username: "a", Firstname: "C", Lastname: "C", Email: "c@x.com", Password: "x"}
	assert.Error(t, repo.Create(ctx, dupUsername))

	var count int64
	require.NoError(t, db.Model(&user.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserRepositoryDeleteWithPosts(t *testing.T) {
	db := newTestDB(t)
	repo := database.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	author := newTestUser(t, db, "a", "a@x.com")
	other := newTestUser(t, db, "b", "b@x.com")

	for _, title := range []string{"one", "two"} {
		require.NoError(t, db.Create(&post.Post{Title: title, Content: "body", AuthorID: author.ID}).Error)
	}
	require.NoError(t, db.Create(&post.Post{Title: "keep", Content: "body", AuthorID: other.ID}).Error)

	require.NoError(t, repo.DeleteWithPosts(ctx, author.ID))

	_, err := repo.FindByID(ctx, author.ID)
	assert.ErrorIs(t, err, userPort.ErrUserNotFound)

	var remaining []post.Post
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].AuthorID)
}

func TestUserRepositoryDeleteWithPostsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := database.NewUserRepositoryDatabase(db)

	err := repo.DeleteWithPosts(context.Background(), 99)
	assert.ErrorIs(t, err, userPort.ErrUserNotFound)
}
