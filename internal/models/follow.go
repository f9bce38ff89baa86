package models

import (
	"time"
)

// Follow is a directed subscription from UserID to FollowingID. Self
// follows are rejected in the service layer; duplicate pairs are rejected
// by the unique index. Listings order newest first.
type Follow struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UserID      uint      `gorm:"not null;uniqueIndex:ux_follow_user_following" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FollowingID uint      `gorm:"not null;uniqueIndex:ux_follow_user_following" json:"following_id"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}
