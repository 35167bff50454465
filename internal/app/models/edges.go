package models

import (
	"time"
)

// PostLike is a composite-keyed membership row in 'post_likes'.
// One like per (post, user) pair; it is only ever created or deleted.
type PostLike struct {
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// EventAttendee is a composite-keyed membership row in 'event_attendees'
type EventAttendee struct {
	EventID  int64     `json:"eventId" db:"event_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

// UserFollow is a directed edge in 'user_follows'. A user never follows
// themselves; the table carries a CHECK enforcing it as a backstop.
type UserFollow struct {
	FollowerID  int64     `json:"followerId" db:"follower_id"`
	FollowingID int64     `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
