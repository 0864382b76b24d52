package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled on read, not stored.
	Likes       []uint       `gorm:"-" json:"likes"`
	ContentHTML string       `gorm:"-" json:"content_html,omitempty"`
	Author      *UserSummary `gorm:"-" json:"author,omitempty"`
}
