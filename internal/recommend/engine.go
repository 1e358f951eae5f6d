// Package recommend implements the content-based feed ranking engine: it
// converts a user's like/comment history into normalized tag weights, scores
// a bounded window of recent candidate posts against those weights with a
// recency decay, and produces a deterministic ranked feed.
//
// The engine is stateless. Every dependency (the persistence read surface
// and the clock) is injected, so each call is a pure function over a
// snapshot of interaction data. Feeds computed concurrently with writes may
// be stale; that is acceptable for a recommendation feed.
package recommend

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rahat92/postpulse/backend/internal/models"
	"github.com/rahat92/postpulse/backend/internal/repositories"
)

// Interaction weights. A comment signals stronger engagement than a like, so
// it contributes twice the weight per tag.
const (
	likeWeight    = 1.0
	commentWeight = 2.0
)

// Defaults applied by NewEngine when the config leaves them zero.
const (
	DefaultCandidateWindow = 100
	DefaultFeedLimit       = 20
)

// ErrUserNotFound is returned when a feed is requested for a user that does
// not exist.
var ErrUserNotFound = errors.New("user not found")

// Store is the narrow read surface the engine consumes from the persistence
// layer. All posts it returns must carry their tag associations and
// UTC-normalized creation timestamps.
type Store interface {
	FindUser(id uint) (*models.User, error)
	FindPostsLikedBy(userID uint) ([]models.Post, error)
	FindPostsCommentedBy(userID uint) ([]models.Post, error)
	FindLikedPostIDs(userID uint) ([]uint, error)
	FindCommentedPostIDs(userID uint) ([]uint, error)
	FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error)
}

// ScoredPost pairs a candidate post with its relevance score.
type ScoredPost struct {
	Post  models.Post
	Score float64
}

// EngineConfig holds the tunables of the feed engine.
type EngineConfig struct {
	// CandidateWindow caps how many recent posts are considered for scoring.
	CandidateWindow int

	// DefaultLimit is the feed length used when the caller passes limit <= 0.
	DefaultLimit int

	// Now supplies the reference time for recency decay. Defaults to
	// time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// Engine computes personalized feeds over a Store snapshot.
type Engine struct {
	store           Store
	candidateWindow int
	defaultLimit    int
	now             func() time.Time
}

// NewEngine creates a new Engine, applying defaults for unset config fields.
func NewEngine(store Store, cfg EngineConfig) *Engine {
	if cfg.CandidateWindow <= 0 {
		cfg.CandidateWindow = DefaultCandidateWindow
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultFeedLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		store:           store,
		candidateWindow: cfg.CandidateWindow,
		defaultLimit:    cfg.DefaultLimit,
		now:             cfg.Now,
	}
}

// TagWeights computes the user's normalized topical affinity: every tag on a
// liked post adds 1.0, every tag on a commented post adds 2.0, then the
// totals are divided by their sum so the weights form a distribution summing
// to 1. A post both liked and commented on contributes through both passes.
// A user with no interactions gets an empty map.
func (e *Engine) TagWeights(userID uint) (map[string]float64, error) {
	liked, err := e.store.FindPostsLikedBy(userID)
	if err != nil {
		return nil, fmt.Errorf("loading liked posts for user %d: %w", userID, err)
	}
	commented, err := e.store.FindPostsCommentedBy(userID)
	if err != nil {
		return nil, fmt.Errorf("loading commented posts for user %d: %w", userID, err)
	}

	weights := make(map[string]float64)
	for _, post := range liked {
		for _, name := range post.TagNames() {
			weights[name] += likeWeight
		}
	}
	for _, post := range commented {
		for _, name := range post.TagNames() {
			weights[name] += commentWeight
		}
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total > 0 {
		for name := range weights {
			weights[name] /= total
		}
	}
	return weights, nil
}

// Interactions returns the sets of post IDs the user has liked and
// commented on. Empty sets are a valid state and trigger the cold-start
// fallback downstream.
func (e *Engine) Interactions(userID uint) (liked, commented map[uint]struct{}, err error) {
	likedIDs, err := e.store.FindLikedPostIDs(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading liked post ids for user %d: %w", userID, err)
	}
	commentedIDs, err := e.store.FindCommentedPostIDs(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading commented post ids for user %d: %w", userID, err)
	}

	liked = make(map[uint]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}
	commented = make(map[uint]struct{}, len(commentedIDs))
	for _, id := range commentedIDs {
		commented[id] = struct{}{}
	}
	return liked, commented, nil
}

// PersonalizedFeed computes the ranked feed for a user. It fails with
// ErrUserNotFound for an unknown user and otherwise always succeeds, even
// when no candidates remain. Interacted posts never appear in the result.
//
// With a non-empty weight map candidates are sorted by (score, createdAt)
// descending. A cold-start user skips scoring entirely: every candidate gets
// score 0.0 and the feed is pure recency order. The returned bool reports
// whether the cold-start path was taken.
func (e *Engine) PersonalizedFeed(userID uint, limit int) ([]ScoredPost, bool, error) {
	if limit <= 0 {
		limit = e.defaultLimit
	}

	if _, err := e.store.FindUser(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, fmt.Errorf("looking up user %d: %w", userID, err)
	}

	weights, err := e.TagWeights(userID)
	if err != nil {
		return nil, false, err
	}

	liked, commented, err := e.Interactions(userID)
	if err != nil {
		return nil, false, err
	}
	excluded := make([]uint, 0, len(liked)+len(commented))
	for id := range liked {
		excluded = append(excluded, id)
	}
	for id := range commented {
		if _, ok := liked[id]; !ok {
			excluded = append(excluded, id)
		}
	}

	candidates, err := e.store.FindPostsExcluding(excluded, e.candidateWindow)
	if err != nil {
		return nil, false, fmt.Errorf("loading candidate posts for user %d: %w", userID, err)
	}

	coldStart := len(weights) == 0
	scored := make([]ScoredPost, len(candidates))
	if !coldStart {
		now := e.now().UTC()
		for i, post := range candidates {
			scored[i] = ScoredPost{Post: post, Score: Score(post, weights, now)}
		}
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].Score != scored[j].Score {
				return scored[i].Score > scored[j].Score
			}
			return scored[i].Post.CreatedAt.After(scored[j].Post.CreatedAt)
		})
	} else {
		for i, post := range candidates {
			scored[i] = ScoredPost{Post: post}
		}
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Post.CreatedAt.After(scored[j].Post.CreatedAt)
		})
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, coldStart, nil
}
