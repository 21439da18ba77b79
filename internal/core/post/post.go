package post

import (
	"time"

	"github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

// Post is a published entry. AuthorID is always the numeric user id; the
// database enforces the reference and cascades deletes of the author.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:100;not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  uint      `gorm:"column:author;not null;index"`
	Author    user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:date_created;autoCreateTime"`
}

func (Post) TableName() string { return "posts" }
