package models

// Tag represents a post topic. Tag names are unique and matched
// case-sensitively.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Posts []Post `json:"-" gorm:"many2many:post_tags"`
}
