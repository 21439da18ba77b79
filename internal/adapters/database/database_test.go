package database_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bishopxxx/Bishop-blog/internal/core/post"
	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

// newTestDB opens a fresh in-memory sqlite database, one per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &post.Post{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, email string) *user.User {
	t.Helper()

	u := &user.User{
		Username:  username,
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Password:  "$2a$10$fakedfakedfakedfakedfakedfakedfakedfakedfakedfakedfake",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
