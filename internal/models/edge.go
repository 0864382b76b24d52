package models

import (
	"time"
)

type EdgeKind string

const (
	EdgeFollower  EdgeKind = "follower"  // OtherID follows UserID
	EdgeFollowing EdgeKind = "following" // UserID follows OtherID
	EdgeRequest   EdgeKind = "request"   // OtherID asked to follow UserID
	EdgeMute      EdgeKind = "mute"      // UserID muted OtherID
	EdgeNotify    EdgeKind = "notify"    // UserID wants notifications from OtherID
)

// UserEdge is one member of one user's relationship sets. The follower and
// following sets are mirrored pairs: a follow writes a follower row on the
// target and a following row on the actor, always inside one transaction.
type UserEdge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_edge" json:"user_id"`
	OtherID   uint      `gorm:"not null;uniqueIndex:idx_user_edge" json:"other_id"`
	Kind      EdgeKind  `gorm:"type:varchar(12);not null;uniqueIndex:idx_user_edge" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
