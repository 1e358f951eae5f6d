package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rahat92/postpulse/backend/internal/repositories"
)

// AnalyticsHandler serves aggregate interaction statistics
type AnalyticsHandler struct {
	tagRepository repositories.TagRepository
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(tagRepo repositories.TagRepository) *AnalyticsHandler {
	return &AnalyticsHandler{tagRepository: tagRepo}
}

// RegisterAnalyticsRoutes registers analytics-related routes
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(g *echo.Group) {
	g.GET("/analytics/tags", h.GetTopTags)
}

// GetTopTags returns the tags with the highest accumulated interaction
// weight across all users, likes counting 1 and comments 2 as in the feed
// weighting.
func (h *AnalyticsHandler) GetTopTags(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	rows, err := h.tagRepository.TopTagsByInteractionWeight(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"tags": rows})
}
