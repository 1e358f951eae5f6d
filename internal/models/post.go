package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a user post. Title, content and tags are immutable once
// created; posts are never deleted.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" gorm:"index;not null"`
	CreatorID uint      `json:"creator_id" gorm:"index;not null"`
	Creator   *User     `json:"-" gorm:"foreignKey:CreatorID"`
	Tags      []Tag     `json:"-" gorm:"many2many:post_tags"`
}

// AfterFind normalizes the stored timestamp to UTC. Score arithmetic must
// never mix representations with different offsets.
func (p *Post) AfterFind(*gorm.DB) error {
	p.CreatedAt = p.CreatedAt.UTC()
	return nil
}

// TagNames returns the names of the tags attached to the post.
func (p Post) TagNames() []string {
	names := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		names[i] = t.Name
	}
	return names
}

// CreationTime returns the post's creation timestamp.
func (p Post) CreationTime() time.Time {
	return p.CreatedAt
}

// PostResponse is the JSON shape for a single post, with tags flattened to names
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CreatorID uint      `json:"creator_id"`
	Tags      []string  `json:"tags"`
}

// ToResponse converts a Post to its JSON shape
func (p Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		CreatorID: p.CreatorID,
		Tags:      p.TagNames(),
	}
}

// FeedPost is a post enriched with its personalization score
type FeedPost struct {
	PostResponse
	Score float64 `json:"score"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,min=1,max=200"`
	Content string   `json:"content,omitempty" validate:"omitempty,max=5000"`
	Tags    []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
