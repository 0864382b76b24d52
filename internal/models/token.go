package models

import (
	"time"
)

// AuthToken is an opaque bearer token presented in the Authorization header.
type AuthToken struct {
	Token     string    `gorm:"primaryKey;size:36" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
