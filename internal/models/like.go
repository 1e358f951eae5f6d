package models

import "time"

// Like represents a like on a post. The composite unique index is the
// enforcement point for the at-most-one-like-per-(user,post) invariant:
// concurrent duplicate attempts race on the constraint, not on application
// checks.
//
// Likes are removed with hard deletes. A soft-delete column would leave the
// removed row occupying the unique index and block the user from ever
// re-liking the post.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_likes_user_post;not null"` // ID of the user who liked the post
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_likes_user_post;not null"` // ID of the post that was liked
	CreatedAt time.Time `json:"created_at"`
}
