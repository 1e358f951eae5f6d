package models

import "gorm.io/gorm"

// Comment represents a comment on a post. Unlike likes, a user may comment
// on the same post any number of times.
type Comment struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"` // ID of the user who made the comment
	PostID  uint   `json:"post_id" gorm:"index;not null"` // ID of the post the comment belongs to
	Content string `json:"content" gorm:"not null"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
