package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// userHandler handles user discovery endpoints.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user discovery routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/search", h.searchUsers)
		users.GET("/suggested", h.suggestedUsers)
	}
}

// searchUsers godoc
// @Summary Search users
// @Description Matches name or username case-insensitively, excluding the caller.
// @Tags users
// @Produce json
// @Param q query string true "Search query (min 2 chars)"
// @Param limit query int false "Limit number of results" default(10)
// @Success 200 {object} dto.UsersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/search [get]
func (h *userHandler) searchUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.SearchUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Search query must be at least 2 characters"})
		return
	}

	users, err := h.userService.SearchUsers(c.Request.Context(), userID, params.Query, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Users not found")
		return
	}
	c.JSON(http.StatusOK, dto.UsersResponse{Users: users, Count: len(users)})
}

// suggestedUsers godoc
// @Summary Suggest users to add
// @Description Samples users outside the caller's close circle.
// @Tags users
// @Produce json
// @Param limit query int false "Limit number of results" default(8)
// @Success 200 {object} dto.UsersResponse
// @Security BearerAuth
// @Router /users/suggested [get]
func (h *userHandler) suggestedUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.SuggestedUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.SuggestUsers(c.Request.Context(), userID, params.Limit)
	if err != nil {
		respondError(c, logger, err, "Users not found")
		return
	}
	c.JSON(http.StatusOK, dto.UsersResponse{Users: users})
}
