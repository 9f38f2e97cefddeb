package models

import "time"

// Follow is a directed edge from a follower to the user they follow.
// The composite unique index backs the atomic duplicate check on insert.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"index;uniqueIndex:idx_follower_following;not null" json:"followerId"`
	FollowingID uint      `gorm:"index;uniqueIndex:idx_follower_following;not null" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
