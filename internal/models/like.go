package models

import (
	"time"
)

// Like marks membership of a user in a post's or comment's like set.
// Exactly one of PostID / CommentID is set.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"index" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
