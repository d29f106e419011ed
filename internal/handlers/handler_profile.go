package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// profileHandler serves profile views with derived stats.
type profileHandler struct {
	userService  portssvc.UserSvcFacade
	statsService portssvc.StatsSvcFacade
}

func newProfileHandler(us portssvc.UserSvcFacade, ss portssvc.StatsSvcFacade) *profileHandler {
	return &profileHandler{userService: us, statsService: ss}
}

// registerProfileRoutes registers profile routes.
func registerProfileRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, statsService portssvc.StatsSvcFacade) {
	h := newProfileHandler(userService, statsService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.ownProfile)
		profile.PUT("", h.updateProfile)
		profile.GET("/:username", h.publicProfile)
	}
}

// ownProfile godoc
// @Summary Get the caller's profile
// @Description The caller's account with freshly derived stats; the snapshot is written back to the user row.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) ownProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "User not found")
		return
	}

	stats, err := h.statsService.RefreshStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to refresh stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, stats))
}

// updateProfile godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already taken"})
			return
		}
		respondError(c, logger, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// publicProfile godoc
// @Summary Get another user's profile
// @Description The target's public profile with derived stats. Email is never included.
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.PublicProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/{username} [get]
func (h *profileHandler) publicProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := mustUserID(c); !ok {
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, logger, err, "User not found")
		return
	}

	stats, err := h.statsService.ComputeStats(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to compute stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicProfileResponse(user, stats))
}
