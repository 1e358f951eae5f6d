package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rahat92/postpulse/backend/internal/models"
	"github.com/rahat92/postpulse/backend/internal/repositories"
	"github.com/rahat92/postpulse/backend/validators"
)

// In-memory repository fakes shared across handler tests.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return repositories.ErrDuplicateInteraction
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakePostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]*models.Post), nextID: 1}
}

func (r *fakePostRepo) addPost(id uint, createdAt time.Time, tags ...string) {
	post := &models.Post{ID: id, Title: "post", CreatedAt: createdAt}
	for _, name := range tags {
		post.Tags = append(post.Tags, models.Tag{Name: name})
	}
	r.posts[id] = post
	if id >= r.nextID {
		r.nextID = id + 1
	}
}

func (r *fakePostRepo) CreatePost(post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (r *fakePostRepo) FindPostsLikedBy(uint) ([]models.Post, error)     { return nil, nil }
func (r *fakePostRepo) FindPostsCommentedBy(uint) ([]models.Post, error) { return nil, nil }

func (r *fakePostRepo) FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error) {
	excluded := make(map[uint]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	var posts []models.Post
	for _, p := range r.posts {
		if _, skip := excluded[p.ID]; !skip {
			posts = append(posts, *p)
		}
	}
	for i := 0; i < len(posts); i++ {
		for j := i + 1; j < len(posts); j++ {
			if posts[j].CreatedAt.After(posts[i].CreatedAt) {
				posts[i], posts[j] = posts[j], posts[i]
			}
		}
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

type likeKey struct{ userID, postID uint }

type fakeLikeRepo struct {
	likes map[likeKey]*models.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likeKey]*models.Like)}
}

func (r *fakeLikeRepo) CreateLike(like *models.Like) error {
	key := likeKey{like.UserID, like.PostID}
	if _, exists := r.likes[key]; exists {
		return repositories.ErrDuplicateInteraction
	}
	r.likes[key] = like
	return nil
}

func (r *fakeLikeRepo) DeleteLike(userID, postID uint) error {
	key := likeKey{userID, postID}
	if _, exists := r.likes[key]; !exists {
		return repositories.ErrNotFound
	}
	delete(r.likes, key)
	return nil
}

func (r *fakeLikeRepo) GetLikedPostIDs(userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.likes {
		if key.userID == userID {
			ids = append(ids, key.postID)
		}
	}
	return ids, nil
}

func (r *fakeLikeRepo) HasUserLikedPost(userID, postID uint) (bool, error) {
	_, ok := r.likes[likeKey{userID, postID}]
	return ok, nil
}

type fakeCommentRepo struct {
	comments []*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo { return &fakeCommentRepo{} }

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = uint(len(r.comments) + 1)
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (r *fakeCommentRepo) GetCommentedPostIDs(userID uint) ([]uint, error) {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, c := range r.comments {
		if c.UserID != userID {
			continue
		}
		if _, dup := seen[c.PostID]; dup {
			continue
		}
		seen[c.PostID] = struct{}{}
		ids = append(ids, c.PostID)
	}
	return ids, nil
}

// newTestContext builds an Echo context for a request authenticated as
// userID, with optional path params given as name/value pairs.
func newTestContext(method, target, body string, userID uint, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID > 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID, Username: "tester"})
	}
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}
