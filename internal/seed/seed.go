// Package seed populates the database with demo content for local
// development. Seeding is idempotent: rerunning against an already-seeded
// database creates nothing new.
package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rahat92/postpulse/backend/internal/models"
)

type seedPost struct {
	title   string
	creator string
	tags    []string
	ageDays int
}

var seedUsers = []string{"alice", "bob", "carol", "dave"}

var seedPosts = []seedPost{
	{title: "Go 1.25 released", creator: "alice", tags: []string{"tech"}, ageDays: 1},
	{title: "Election night recap", creator: "bob", tags: []string{"news"}, ageDays: 2},
	{title: "Champions league final", creator: "carol", tags: []string{"sports"}, ageDays: 3},
	{title: "New synth review", creator: "dave", tags: []string{"music", "tech"}, ageDays: 5},
	{title: "Quantum computing primer", creator: "alice", tags: []string{"tech"}, ageDays: 10},
	{title: "Marathon training diary", creator: "bob", tags: []string{"sports"}, ageDays: 20},
	{title: "Archive: dialup memories", creator: "carol", tags: []string{"tech"}, ageDays: 120},
}

// Run seeds demo users, tags, posts, likes and comments.
func Run(db *gorm.DB, log zerolog.Logger) error {
	users := make(map[string]*models.User, len(seedUsers))
	for _, username := range seedUsers {
		user := &models.User{Username: username}
		if err := db.Where(models.User{Username: username}).FirstOrCreate(user).Error; err != nil {
			return fmt.Errorf("seeding user %q: %w", username, err)
		}
		users[username] = user
	}

	posts := make(map[string]*models.Post, len(seedPosts))
	for _, sp := range seedPosts {
		var tags []models.Tag
		for _, name := range sp.tags {
			var tag models.Tag
			if err := db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("seeding tag %q: %w", name, err)
			}
			tags = append(tags, tag)
		}

		post := &models.Post{
			Title:     sp.title,
			CreatorID: users[sp.creator].ID,
			CreatedAt: time.Now().UTC().AddDate(0, 0, -sp.ageDays),
			Tags:      tags,
		}
		var existing models.Post
		err := db.Where("title = ?", sp.title).First(&existing).Error
		switch err {
		case nil:
			posts[sp.title] = &existing
			continue
		case gorm.ErrRecordNotFound:
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seeding post %q: %w", sp.title, err)
			}
			posts[sp.title] = post
		default:
			return err
		}
	}

	// A few interactions so the demo feed is personalized out of the box.
	interactions := []struct {
		user, post string
		comment    string
	}{
		{user: "alice", post: "Champions league final"},
		{user: "alice", post: "Marathon training diary", comment: "Great pacing advice"},
		{user: "bob", post: "Go 1.25 released"},
		{user: "bob", post: "Quantum computing primer", comment: "Mind bending stuff"},
		{user: "carol", post: "New synth review"},
	}
	for _, in := range interactions {
		user, post := users[in.user], posts[in.post]
		if user == nil || post == nil {
			continue
		}
		if in.comment != "" {
			comment := models.Comment{UserID: user.ID, PostID: post.ID, Content: in.comment}
			var count int64
			db.Model(&models.Comment{}).Where("user_id = ? AND post_id = ?", user.ID, post.ID).Count(&count)
			if count == 0 {
				if err := db.Create(&comment).Error; err != nil {
					return fmt.Errorf("seeding comment: %w", err)
				}
			}
			continue
		}
		like := models.Like{UserID: user.ID, PostID: post.ID}
		if err := db.Where(models.Like{UserID: user.ID, PostID: post.ID}).FirstOrCreate(&like).Error; err != nil {
			return fmt.Errorf("seeding like: %w", err)
		}
	}

	log.Info().Int("users", len(users)).Int("posts", len(posts)).Msg("database seeded")
	return nil
}
