package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// reactionHandler handles the like ledger endpoints.
type reactionHandler struct {
	reactionService portssvc.ReactionSvcFacade
}

func newReactionHandler(rs portssvc.ReactionSvcFacade) *reactionHandler {
	return &reactionHandler{reactionService: rs}
}

// registerReactionRoutes registers all reaction routes.
func registerReactionRoutes(rg *gin.RouterGroup, reactionService portssvc.ReactionSvcFacade) {
	h := newReactionHandler(reactionService)

	reactions := rg.Group("/reactions")
	{
		reactions.POST("/toggle", h.toggle)
		reactions.POST("/:journalID", h.like)
		reactions.DELETE("/:journalID", h.unlike)
		reactions.GET("/journal/:journalID", h.listByJournal)
		reactions.GET("/liked", h.listLiked)
	}
}

// toggle godoc
// @Summary Toggle a like
// @Description Flips the caller's like on the journal and returns the new state.
// @Tags reactions
// @Accept json
// @Produce json
// @Param reaction body dto.ToggleReactionRequest true "Journal to toggle"
// @Success 200 {object} dto.ReactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reactions/toggle [post]
func (h *reactionHandler) toggle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	liked, likesCount, err := h.reactionService.Toggle(c.Request.Context(), userID, req.JournalID)
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}

	message := "Journal unliked"
	if liked {
		message = "Journal liked"
	}
	c.JSON(http.StatusOK, dto.ReactionResponse{Message: message, Liked: liked, LikesCount: likesCount})
}

// like godoc
// @Summary Like a journal
// @Tags reactions
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.ReactionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already liked"
// @Security BearerAuth
// @Router /reactions/{journalID} [post]
func (h *reactionHandler) like(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	likesCount, err := h.reactionService.Like(c.Request.Context(), userID, c.Param("journalID"))
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, dto.ReactionResponse{Message: "Journal liked", Liked: true, LikesCount: likesCount})
}

// unlike godoc
// @Summary Remove a like
// @Tags reactions
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.ReactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reactions/{journalID} [delete]
func (h *reactionHandler) unlike(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	likesCount, err := h.reactionService.Unlike(c.Request.Context(), userID, c.Param("journalID"))
	if err != nil {
		respondError(c, logger, err, "Like not found")
		return
	}
	c.JSON(http.StatusOK, dto.ReactionResponse{Message: "Journal unliked", Liked: false, LikesCount: likesCount})
}

// listByJournal godoc
// @Summary List a journal's reactions
// @Tags reactions
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.ReactionsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reactions/journal/{journalID} [get]
func (h *reactionHandler) listByJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	reactions, err := h.reactionService.ListByJournal(c.Request.Context(), userID, c.Param("journalID"))
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, dto.ReactionsResponse{Reactions: reactions})
}

// listLiked godoc
// @Summary List journals the caller has liked
// @Tags reactions
// @Produce json
// @Success 200 {object} dto.LikedJournalsResponse
// @Security BearerAuth
// @Router /reactions/liked [get]
func (h *reactionHandler) listLiked(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	ids, err := h.reactionService.ListLiked(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Likes not found")
		return
	}
	c.JSON(http.StatusOK, dto.LikedJournalsResponse{LikedJournals: ids})
}
