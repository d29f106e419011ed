package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// earlyAccessHandler records pre-launch interest signups.
type earlyAccessHandler struct {
	earlyAccessService portssvc.EarlyAccessSvcFacade
}

// registerEarlyAccessRoutes registers the public early-access route.
func registerEarlyAccessRoutes(rg *gin.Engine, earlyAccessService portssvc.EarlyAccessSvcFacade) {
	h := &earlyAccessHandler{earlyAccessService: earlyAccessService}
	rg.POST("/api/v1/early-access", h.register)
}

// register godoc
// @Summary Register pre-launch interest
// @Description Stores a signup, one per mobile number.
// @Tags early-access
// @Accept json
// @Produce json
// @Param signup body dto.EarlyAccessRequest true "Signup details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid mobile number"
// @Failure 409 {object} ErrorResponse "Mobile number already registered"
// @Router /early-access [post]
func (h *earlyAccessHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EarlyAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if _, err := h.earlyAccessService.RegisterInterest(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid mobile number"})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Mobile number already registered"})
			return
		}
		respondError(c, logger, err, "Signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "You're on the list"})
}
