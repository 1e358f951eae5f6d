package repositories

import (
	"errors"

	"github.com/rahat92/postpulse/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. The Find*
// methods return posts with their tag associations populated, since tags
// are the sole signal the recommendation engine scores on.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	FindPostsLikedBy(userID uint) ([]models.Post, error)
	FindPostsCommentedBy(userID uint) ([]models.Post, error)
	FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL along with its tag associations
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with tags populated
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindPostsLikedBy retrieves all posts liked by a user, tags populated
func (r *PostgresPostRepository) FindPostsLikedBy(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Tags").
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ?", userID).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPostsCommentedBy retrieves all posts a user has commented on, tags
// populated. A post with several comments from the same user appears once.
func (r *PostgresPostRepository) FindPostsCommentedBy(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Tags").
		Joins("JOIN comments ON comments.post_id = posts.id AND comments.deleted_at IS NULL").
		Where("comments.user_id = ?", userID).
		Distinct("posts.*").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPostsExcluding retrieves the most recent posts whose IDs are not in
// excludedIDs, newest first, capped at limit. This is the bounded candidate
// window: anything older than the cap is invisible to scoring.
func (r *PostgresPostRepository) FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Preload("Tags").Order("created_at DESC").Limit(limit)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
