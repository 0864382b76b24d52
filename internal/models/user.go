package models

import (
	"time"
)

type AccountType string

const (
	AccountTypePublic  AccountType = "public"
	AccountTypePrivate AccountType = "private"
)

// DefaultProfileImage is used when a user registers without an avatar.
const DefaultProfileImage = "https://wp.cpsts.com/images/2017/04/person-icon.png"

type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Username     string      `gorm:"uniqueIndex;not null" json:"username"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	Password     string      `gorm:"not null" json:"-"` // Hash
	Bio          string      `gorm:"size:200" json:"bio"`
	ProfileImage string      `gorm:"type:text" json:"profile_image"`
	AccountType  AccountType `gorm:"type:varchar(10);default:'public';not null" json:"account_type"`
	IsOnline     bool        `gorm:"default:true" json:"is_online"`
	IsAdmin      bool        `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relationship sets, filled from user_edges on read.
	Followers         []uint `gorm:"-" json:"followers"`
	Following         []uint `gorm:"-" json:"following"`
	FollowRequests    []uint `gorm:"-" json:"follow_requests"`
	MutedAccounts     []uint `gorm:"-" json:"muted_accounts"`
	NotificationsFrom []uint `gorm:"-" json:"notifications_from"`
}

// UserSummary is the short author shape embedded in post, comment and
// message responses.
type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profile_image"`
	IsOnline     bool   `json:"is_online"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
		IsOnline:     u.IsOnline,
	}
}
