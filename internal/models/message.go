package models

import (
	"time"
)

// Message is immutable once created except for the Read flag.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`

	Sender *UserSummary `gorm:"-" json:"sender,omitempty"`
}

// Conversation is the aggregated per-partner view of a user's messages.
type Conversation struct {
	WithUser    UserSummary `json:"with_user"`
	LastMessage Message     `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
}
