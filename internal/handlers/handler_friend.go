package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// friendHandler handles the friend-request lifecycle endpoints.
type friendHandler struct {
	friendService portssvc.FriendRequestSvcFacade
}

func newFriendHandler(fs portssvc.FriendRequestSvcFacade) *friendHandler {
	return &friendHandler{friendService: fs}
}

// registerFriendRoutes registers all friend-request routes.
func registerFriendRoutes(rg *gin.RouterGroup, friendService portssvc.FriendRequestSvcFacade) {
	h := newFriendHandler(friendService)

	friends := rg.Group("/friends")
	{
		friends.POST("/requests", h.sendRequest)
		friends.POST("/requests/:id/accept", h.acceptRequest)
		friends.POST("/requests/:id/reject", h.rejectRequest)
		friends.DELETE("/requests/:userID", h.cancelRequest)
		friends.GET("/requests/pending", h.listPending)
		friends.GET("/requests/sent", h.listSent)
		friends.GET("/status/:userID", h.statusBetween)
	}
}

// sendRequest godoc
// @Summary Send a friend request
// @Description Creates a pending request. A pending or accepted record between the pair blocks a new one.
// @Tags friends
// @Accept json
// @Produce json
// @Param request body dto.SendFriendRequestRequest true "Recipient"
// @Success 201 {object} dto.FriendRequestResponse
// @Failure 400 {object} ErrorResponse "Self-request or invalid body"
// @Failure 404 {object} ErrorResponse "Recipient not found"
// @Failure 409 {object} ErrorResponse "Pair already has an active request"
// @Security BearerAuth
// @Router /friends/requests [post]
func (h *friendHandler) sendRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	detail, err := h.friendService.SendRequest(c.Request.Context(), userID, req.To)
	if err != nil {
		respondError(c, logger, err, "User not found")
		return
	}

	logger.Info("Friend request sent", slog.String("request_id", detail.RequestID))
	c.JSON(http.StatusCreated, dto.FriendRequestResponse{Message: "Friend request sent", FriendRequest: detail})
}

// acceptRequest godoc
// @Summary Accept a friend request
// @Description Transitions a pending request to accepted and makes the two close-circle memberships mutual.
// @Tags friends
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.FriendRequestResponse
// @Failure 403 {object} ErrorResponse "Caller is not the recipient"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /friends/requests/{id}/accept [post]
func (h *friendHandler) acceptRequest(c *gin.Context) {
	h.transition(c, true)
}

// rejectRequest godoc
// @Summary Reject a friend request
// @Tags friends
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.FriendRequestResponse
// @Failure 403 {object} ErrorResponse "Caller is not the recipient"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /friends/requests/{id}/reject [post]
func (h *friendHandler) rejectRequest(c *gin.Context) {
	h.transition(c, false)
}

// transition runs accept or reject; the recipient-only rule lives in the service.
func (h *friendHandler) transition(c *gin.Context, accept bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	requestID := c.Param("id")

	var (
		fr      *domain.FriendRequest
		message string
		err     error
	)
	if accept {
		fr, err = h.friendService.AcceptRequest(c.Request.Context(), userID, requestID)
		message = "Friend request accepted"
	} else {
		fr, err = h.friendService.RejectRequest(c.Request.Context(), userID, requestID)
		message = "Friend request rejected"
	}
	if err != nil {
		respondError(c, logger, err, "Friend request not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "request": fr})
}

// cancelRequest godoc
// @Summary Cancel a sent friend request
// @Description Deletes the caller's pending request to the given user.
// @Tags friends
// @Produce json
// @Param userID path string true "Recipient user ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "No pending request to cancel"
// @Security BearerAuth
// @Router /friends/requests/{userID} [delete]
func (h *friendHandler) cancelRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.friendService.CancelRequest(c.Request.Context(), userID, c.Param("userID")); err != nil {
		respondError(c, logger, err, "No pending request to cancel")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend request cancelled"})
}

// listPending godoc
// @Summary List pending requests addressed to the caller
// @Tags friends
// @Produce json
// @Success 200 {object} dto.FriendRequestsResponse
// @Security BearerAuth
// @Router /friends/requests/pending [get]
func (h *friendHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	requests, err := h.friendService.ListPending(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Requests not found")
		return
	}
	c.JSON(http.StatusOK, dto.FriendRequestsResponse{Requests: requests, Count: len(requests)})
}

// listSent godoc
// @Summary List requests the caller has sent
// @Tags friends
// @Produce json
// @Success 200 {object} dto.FriendRequestsResponse
// @Security BearerAuth
// @Router /friends/requests/sent [get]
func (h *friendHandler) listSent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	requests, err := h.friendService.ListSent(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Requests not found")
		return
	}
	c.JSON(http.StatusOK, dto.FriendRequestsResponse{Requests: requests, Count: len(requests)})
}

// statusBetween godoc
// @Summary Relationship status with another user
// @Description Reports the pair's status from the caller's side: none, pending, received, accepted or rejected.
// @Tags friends
// @Produce json
// @Param userID path string true "Other user ID"
// @Success 200 {object} dto.RelationStatusResponse
// @Security BearerAuth
// @Router /friends/status/{userID} [get]
func (h *friendHandler) statusBetween(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	status, _, err := h.friendService.StatusBetween(c.Request.Context(), userID, c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "Status not found")
		return
	}
	c.JSON(http.StatusOK, dto.RelationStatusResponse{Status: status})
}
