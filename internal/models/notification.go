package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeLike    NotificationType = "like"
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeFollow  NotificationType = "follow"
)

// Notification is an append-only fan-out record. Created as a side effect of
// like/comment/follow actions, never by direct client request.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // Recipient
	ActorID   uint             `gorm:"not null;index" json:"actor_id"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`

	Actor *UserSummary `gorm:"-" json:"actor,omitempty"`
}
