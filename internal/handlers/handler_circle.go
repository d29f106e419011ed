package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// circleHandler handles close-circle maintenance endpoints.
type circleHandler struct {
	circleService portssvc.CircleSvcFacade
}

func newCircleHandler(cs portssvc.CircleSvcFacade) *circleHandler {
	return &circleHandler{circleService: cs}
}

// registerCircleRoutes registers all close-circle routes.
func registerCircleRoutes(rg *gin.RouterGroup, circleService portssvc.CircleSvcFacade) {
	h := newCircleHandler(circleService)

	circle := rg.Group("/circle")
	{
		circle.GET("", h.listMembers)
		circle.GET("/count", h.countMembers)
		circle.POST("/:userID", h.addMember)
		circle.DELETE("/:userID", h.removeMember)
	}
}

// listMembers godoc
// @Summary List the caller's close circle
// @Tags circle
// @Produce json
// @Success 200 {object} dto.CircleMembersResponse
// @Security BearerAuth
// @Router /circle [get]
func (h *circleHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	members, err := h.circleService.ListMembers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Circle not found")
		return
	}
	c.JSON(http.StatusOK, dto.CircleMembersResponse{CloseFriends: members})
}

// countMembers godoc
// @Summary Count the caller's close circle
// @Tags circle
// @Produce json
// @Success 200 {object} dto.CircleCountResponse
// @Security BearerAuth
// @Router /circle/count [get]
func (h *circleHandler) countMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	count, err := h.circleService.CountMembers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Circle not found")
		return
	}
	c.JSON(http.StatusOK, dto.CircleCountResponse{CloseFriends: count})
}

// addMember godoc
// @Summary Add a user to the caller's close circle
// @Description One-sided add with set semantics; re-adding is a no-op.
// @Tags circle
// @Produce json
// @Param userID path string true "User to add"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Cannot add yourself"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /circle/{userID} [post]
func (h *circleHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.circleService.AddMember(c.Request.Context(), userID, c.Param("userID")); err != nil {
		respondError(c, logger, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to close circle"})
}

// removeMember godoc
// @Summary Remove a user from the caller's close circle
// @Description One-sided removal; also clears the accepted request record so a new request is possible.
// @Tags circle
// @Produce json
// @Param userID path string true "User to remove"
// @Success 200 {object} dto.CircleCountResponse
// @Failure 404 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /circle/{userID} [delete]
func (h *circleHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	count, err := h.circleService.RemoveMember(c.Request.Context(), userID, c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "User is not in your close circle")
		return
	}
	c.JSON(http.StatusOK, dto.CircleCountResponse{CloseFriends: count})
}
