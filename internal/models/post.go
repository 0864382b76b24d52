package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `gorm:"type:text" json:"image,omitempty"` // URL or base64 data URL
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled on read, not stored.
	Likes       []uint       `gorm:"-" json:"likes"`
	CommentIDs  []uint       `gorm:"-" json:"comments"` // creation order
	ContentHTML string       `gorm:"-" json:"content_html,omitempty"`
	Author      *UserSummary `gorm:"-" json:"author,omitempty"`
	Engagement  int          `gorm:"-" json:"engagement,omitempty"` // likes + comments, trending only
}
