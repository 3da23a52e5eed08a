package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"unique_index;not null"`
	Email     string `gorm:"unique_index;not null"`
	FirstName string
	LastName  string
	Password  string
	Posts     []Post    `gorm:"foreignkey:UserID"`
	Comments  []Comment `gorm:"foreignkey:UserID"`
}

// Tag holds a free-text label shared between posts.
type Tag struct {
	gorm.Model
	Name string `gorm:"unique_index;not null"`
}

type Post struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Content   string
	Published bool
	UserID    uint
	User      User      `gorm:"foreignkey:UserID"`
	Tags      []Tag     `gorm:"many2many:post_tags"`
	Comments  []Comment `gorm:"foreignkey:PostID"`
	Likes     []Like    `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Content string `gorm:"not null"`
	PostID  uint
	UserID  uint
	User    User `gorm:"foreignkey:UserID"`
}

// Like is a toggle row: its presence means "liked". It has no DeletedAt on
// purpose — a soft-deleted row would still occupy the unique index and block
// re-liking. The composite index enforces at most one like per (user, post)
// even when two toggles race.
type Like struct {
	ID        uint `gorm:"primary_key"`
	UserID    uint `gorm:"not null;unique_index:idx_likes_user_post"`
	PostID    uint `gorm:"not null;unique_index:idx_likes_user_post"`
	CreatedAt time.Time
}
