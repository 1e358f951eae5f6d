package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rahat92/postpulse/backend/internal/models"
	"github.com/rahat92/postpulse/backend/internal/recommend"
	"github.com/rahat92/postpulse/backend/pkg/metrics"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	engine  *recommend.Engine
	metrics *metrics.Metrics
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(engine *recommend.Engine, m *metrics.Metrics) *FeedHandler {
	return &FeedHandler{
		engine:  engine,
		metrics: m,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the personalized feed for the authenticated user, ranked
// by tag affinity and recency. Posts the user has already liked or commented
// on never appear.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := getUserIDFromContext(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	start := time.Now()
	feed, coldStart, err := h.engine.PersonalizedFeed(userID, limit)
	if err != nil {
		if errors.Is(err, recommend.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if h.metrics != nil {
		h.metrics.FeedRequests.Inc()
		h.metrics.FeedBuildSeconds.Observe(time.Since(start).Seconds())
		if coldStart {
			h.metrics.FeedColdStarts.Inc()
		}
	}

	response := make([]models.FeedPost, len(feed))
	for i, entry := range feed {
		response[i] = models.FeedPost{
			PostResponse: entry.Post.ToResponse(),
			Score:        entry.Score,
		}
	}

	return c.JSON(http.StatusOK, response)
}
