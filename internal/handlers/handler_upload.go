package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// maxUploadBytes caps a single image upload at 10 MiB.
const maxUploadBytes = 10 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// uploadHandler pushes images to the media host and optionally attaches them
// to a journal or the caller's profile.
type uploadHandler struct {
	mediaService   portssvc.MediaSvcFacade
	journalService portssvc.JournalSvcFacade
	userService    portssvc.UserSvcFacade
}

func newUploadHandler(ms portssvc.MediaSvcFacade, js portssvc.JournalSvcFacade, us portssvc.UserSvcFacade) *uploadHandler {
	return &uploadHandler{mediaService: ms, journalService: js, userService: us}
}

// registerUploadRoutes registers the media upload route.
func registerUploadRoutes(rg *gin.RouterGroup, mediaService portssvc.MediaSvcFacade, journalService portssvc.JournalSvcFacade, userService portssvc.UserSvcFacade) {
	h := newUploadHandler(mediaService, journalService, userService)
	rg.POST("/upload", h.upload)
}

// upload godoc
// @Summary Upload an image
// @Description Stores an image on the media host. When journalID is supplied the URL is appended to that entry's images.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpg, png, gif, webp; max 10 MiB)"
// @Param journalID formData string false "Journal to attach the image to"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /upload [post]
func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image exceeds the 10 MiB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported image type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, key, err := h.mediaService.Upload(c.Request.Context(), "journals/"+userID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		logger.Error("Failed to upload image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload image"})
		return
	}

	// Attach in place when a journal is named; the upload survives either way.
	if journalID := c.PostForm("journalID"); journalID != "" {
		if err := h.journalService.AttachImage(c.Request.Context(), userID, journalID, url); err != nil {
			logger.Warn("Uploaded image could not be attached", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			respondError(c, logger, err, "Journal not found")
			return
		}
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{Message: "Image uploaded", ImageURL: url, Key: key})
}
