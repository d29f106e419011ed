package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// feedHandler serves the visibility-scoped feeds.
type feedHandler struct {
	feedService portssvc.FeedSvcFacade
}

func newFeedHandler(fs portssvc.FeedSvcFacade) *feedHandler {
	return &feedHandler{feedService: fs}
}

// registerFeedRoutes registers the feed routes.
func registerFeedRoutes(rg *gin.RouterGroup, feedService portssvc.FeedSvcFacade) {
	h := newFeedHandler(feedService)

	feed := rg.Group("/feed")
	{
		feed.GET("/public", h.publicFeed)
		feed.GET("/circle", h.circleFeed)
	}
}

// publicFeed godoc
// @Summary Public feed
// @Description One page of public entries, newest first. Each returned entry counts one read impression.
// @Tags feed
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.FeedResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /feed/public [get]
func (h *feedHandler) publicFeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.FeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	page, err := h.feedService.PublicFeed(c.Request.Context(), userID, params.Page, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Feed not found")
		return
	}
	c.JSON(http.StatusOK, page)
}

// circleFeed godoc
// @Summary Close-circle feed
// @Description One page of close-circle entries authored by the caller's circle.
// @Tags feed
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.FeedResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /feed/circle [get]
func (h *feedHandler) circleFeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.FeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	page, err := h.feedService.CircleFeed(c.Request.Context(), userID, params.Page, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Feed not found")
		return
	}
	c.JSON(http.StatusOK, page)
}
