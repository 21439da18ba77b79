package user

import (
	"time"
)

// User is a registered account. Password holds the bcrypt credential, never
// the plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"size:20;uniqueIndex;not null"`
	Firstname string    `gorm:"size:20;not null"`
	Lastname  string    `gorm:"size:20;not null"`
	Email     string    `gorm:"size:120;uniqueIndex;not null"`
	Password  string    `gorm:"size:60;not null"`
	CreatedAt time.Time `gorm:"column:date_created;autoCreateTime"`
}

func (User) TableName() string { return "users" }

// SessionIdentity is the stable identifier a session may hold for this user.
func (u *User) SessionIdentity() uint { return u.ID }

// FullName is used by the views.
func (u *User) FullName() string { return u.Firstname + " " + u.Lastname }
