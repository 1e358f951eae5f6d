package repositories

import (
	"github.com/rahat92/postpulse/backend/internal/models"
	"gorm.io/gorm"
)

// TagInteraction is one row of the tag analytics aggregate: a tag name and
// the total interaction weight it has accumulated across all users.
type TagInteraction struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	FindOrCreateByName(name string) (*models.Tag, error)
	TopTagsByInteractionWeight(limit int) ([]TagInteraction, error)
}

// PostgresTagRepository implements TagRepository for PostgreSQL
type PostgresTagRepository struct {
	db *gorm.DB
}

// NewPostgresTagRepository creates a new PostgresTagRepository
func NewPostgresTagRepository(db *gorm.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

// FindOrCreateByName retrieves a tag by exact name, creating it if absent
func (r *PostgresTagRepository) FindOrCreateByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// TopTagsByInteractionWeight aggregates likes (weight 1) and comments
// (weight 2) per tag across all users, mirroring the per-user weighting the
// feed engine uses.
func (r *PostgresTagRepository) TopTagsByInteractionWeight(limit int) ([]TagInteraction, error) {
	var rows []TagInteraction
	err := r.db.Raw(`
		SELECT t.name AS name,
		       COUNT(DISTINCT l.id) * 1.0 + COUNT(DISTINCT c.id) * 2.0 AS weight
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		LEFT JOIN likes l ON l.post_id = pt.post_id
		LEFT JOIN comments c ON c.post_id = pt.post_id AND c.deleted_at IS NULL
		GROUP BY t.name
		HAVING COUNT(DISTINCT l.id) + COUNT(DISTINCT c.id) > 0
		ORDER BY weight DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
