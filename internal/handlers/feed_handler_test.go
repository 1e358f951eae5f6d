package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahat92/postpulse/backend/internal/models"
	"github.com/rahat92/postpulse/backend/internal/recommend"
	"github.com/rahat92/postpulse/backend/pkg/metrics"
)

func newFeedFixture() (*fakeUserRepo, *fakePostRepo, *fakeLikeRepo, *fakeCommentRepo, *metrics.Metrics, *FeedHandler) {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	likeRepo := newFakeLikeRepo()
	commentRepo := newFakeCommentRepo()

	engine := recommend.NewEngine(&feedStore{
		users:    userRepo,
		posts:    postRepo,
		likes:    likeRepo,
		comments: commentRepo,
	}, recommend.EngineConfig{})

	m := metrics.New()
	return userRepo, postRepo, likeRepo, commentRepo, m, NewFeedHandler(engine, m)
}

// feedStore glues the handler-test fakes to the engine's Store interface,
// the same way the router wires the real repositories.
type feedStore struct {
	users    *fakeUserRepo
	posts    *fakePostRepo
	likes    *fakeLikeRepo
	comments *fakeCommentRepo
}

func (s *feedStore) FindUser(id uint) (*models.User, error) { return s.users.GetUserByID(id) }
func (s *feedStore) FindPostsLikedBy(userID uint) ([]models.Post, error) {
	ids, _ := s.likes.GetLikedPostIDs(userID)
	return s.postsByIDs(ids), nil
}
func (s *feedStore) FindPostsCommentedBy(userID uint) ([]models.Post, error) {
	ids, _ := s.comments.GetCommentedPostIDs(userID)
	return s.postsByIDs(ids), nil
}
func (s *feedStore) FindLikedPostIDs(userID uint) ([]uint, error) {
	return s.likes.GetLikedPostIDs(userID)
}
func (s *feedStore) FindCommentedPostIDs(userID uint) ([]uint, error) {
	return s.comments.GetCommentedPostIDs(userID)
}
func (s *feedStore) FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error) {
	return s.posts.FindPostsExcluding(excludedIDs, limit)
}

func (s *feedStore) postsByIDs(ids []uint) []models.Post {
	var posts []models.Post
	for _, id := range ids {
		if p, err := s.posts.GetPostByID(id); err == nil {
			posts = append(posts, *p)
		}
	}
	return posts
}

func TestGetFeedUnknownUser(t *testing.T) {
	_, _, _, _, _, h := newFeedFixture()

	c, _ := newTestContext(http.MethodGet, "/api/v1/feed", "", 42)
	err := h.GetFeed(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetFeedColdStartRecencyOrder(t *testing.T) {
	userRepo, postRepo, _, _, _, h := newFeedFixture()
	require.NoError(t, userRepo.CreateUser(&models.User{Username: "newbie"}))

	now := time.Now().UTC()
	postRepo.addPost(1, now.Add(-3*time.Hour), "tech")
	postRepo.addPost(2, now.Add(-1*time.Hour), "news")
	postRepo.addPost(3, now.Add(-2*time.Hour), "sports")

	c, rec := newTestContext(http.MethodGet, "/api/v1/feed", "", 1)
	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var feed []models.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 3)
	assert.Equal(t, uint(2), feed[0].ID)
	assert.Equal(t, uint(3), feed[1].ID)
	assert.Equal(t, uint(1), feed[2].ID)
	for _, entry := range feed {
		assert.Equal(t, 0.0, entry.Score)
	}
}

func TestGetFeedExcludesInteractedAndRanks(t *testing.T) {
	userRepo, postRepo, likeRepo, commentRepo, _, h := newFeedFixture()
	require.NoError(t, userRepo.CreateUser(&models.User{Username: "alice"}))

	now := time.Now().UTC()
	postRepo.addPost(1, now.Add(-10*time.Hour), "tech")
	postRepo.addPost(2, now.Add(-11*time.Hour), "news")
	require.NoError(t, likeRepo.CreateLike(&models.Like{UserID: 1, PostID: 1}))
	require.NoError(t, commentRepo.CreateComment(&models.Comment{UserID: 1, PostID: 2, Content: "nice"}))

	postRepo.addPost(10, now.Add(-30*time.Minute), "tech")  // weight 1/3
	postRepo.addPost(11, now.Add(-40*time.Minute), "news")  // weight 2/3
	postRepo.addPost(12, now.Add(-50*time.Minute), "music") // no match

	c, rec := newTestContext(http.MethodGet, "/api/v1/feed", "", 1)
	require.NoError(t, h.GetFeed(c))

	var feed []models.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 3)

	// Interacted posts never appear.
	for _, entry := range feed {
		assert.NotEqual(t, uint(1), entry.ID)
		assert.NotEqual(t, uint(2), entry.ID)
	}

	assert.Equal(t, uint(11), feed[0].ID)
	assert.Equal(t, uint(10), feed[1].ID)
	assert.Equal(t, uint(12), feed[2].ID)
	assert.Greater(t, feed[0].Score, feed[1].Score)
	assert.Equal(t, 0.0, feed[2].Score)
}

func TestGetFeedHonorsLimitParam(t *testing.T) {
	userRepo, postRepo, _, _, _, h := newFeedFixture()
	require.NoError(t, userRepo.CreateUser(&models.User{Username: "alice"}))

	now := time.Now().UTC()
	for i := 0; i < 30; i++ {
		postRepo.addPost(uint(100+i), now.Add(-time.Duration(i)*time.Minute), "tech")
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/feed?limit=5", "", 1)
	require.NoError(t, h.GetFeed(c))

	var feed []models.FeedPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed, 5)

	// No limit param: default applies.
	c, rec = newTestContext(http.MethodGet, "/api/v1/feed", "", 1)
	require.NoError(t, h.GetFeed(c))
	feed = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed, recommend.DefaultFeedLimit)
}

func TestGetFeedColdStartCounter(t *testing.T) {
	userRepo, postRepo, likeRepo, _, m, h := newFeedFixture()
	require.NoError(t, userRepo.CreateUser(&models.User{Username: "alice"}))

	now := time.Now().UTC()
	postRepo.addPost(1, now.Add(-2*time.Hour), "tech")
	postRepo.addPost(2, now.Add(-1*time.Hour), "news")

	// No interactions yet, so the request takes the recency fallback.
	c, _ := newTestContext(http.MethodGet, "/api/v1/feed", "", 1)
	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedColdStarts))

	// After a like the user has tag weights and the counter stays put,
	// even though the surviving candidate scores 0.0 against them.
	require.NoError(t, likeRepo.CreateLike(&models.Like{UserID: 1, PostID: 2}))
	c, _ = newTestContext(http.MethodGet, "/api/v1/feed", "", 1)
	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedColdStarts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FeedRequests))
}
