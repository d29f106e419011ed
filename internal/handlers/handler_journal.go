package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers all journal-related routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listOwn)
		journals.GET("/:id", h.getJournal)
		journals.PUT("/:id", h.updateJournal)
		journals.DELETE("/:id", h.deleteJournal)
		journals.PUT("/:id/images", h.replaceImages)
		journals.GET("/date/:date", h.getByDate)
		journals.GET("/month/:year/:month", h.listMonth)
		journals.GET("/user/:userID", h.listByAuthor)
	}
}

// createJournal godoc
// @Summary Create a journal entry
// @Description Creates the caller's entry for one calendar date. A second entry on the same date is rejected.
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Entry details"
// @Success 201 {object} domain.Journal
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry for this date already exists"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An entry already exists for this date"})
			return
		}
		respondError(c, logger, err, "Journal not found")
		return
	}

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, journal)
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves one entry if the caller may see it. Does not count a read impression.
// @Tags journals
// @Produce json
// @Param id path string true "Journal ID"
// @Success 200 {object} domain.Journal
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// updateJournal godoc
// @Summary Update a journal entry
// @Description Updates title, content, visibility, anonymity or images; author only.
// @Tags journals
// @Accept json
// @Produce json
// @Param id path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Updated fields"
// @Success 200 {object} domain.Journal
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{id} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// deleteJournal godoc
// @Summary Delete a journal entry
// @Description Removes an entry and its reactions; author only.
// @Tags journals
// @Produce json
// @Param id path string true "Journal ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{id} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteJournal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal deleted"})
}

// replaceImages godoc
// @Summary Replace a journal's image list
// @Tags journals
// @Accept json
// @Produce json
// @Param id path string true "Journal ID"
// @Param images body object true "Image URLs"
// @Success 200 {object} domain.Journal
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{id}/images [put]
func (h *journalHandler) replaceImages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Images []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	journal, err := h.journalService.ReplaceImages(c.Request.Context(), userID, c.Param("id"), req.Images)
	if err != nil {
		respondError(c, logger, err, "Journal not found")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// listOwn godoc
// @Summary List the caller's journal entries
// @Tags journals
// @Produce json
// @Success 200 {object} dto.JournalsResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listOwn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	journals, err := h.journalService.ListOwn(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Journals not found")
		return
	}
	c.JSON(http.StatusOK, dto.JournalsResponse{Journals: journals})
}

// listByAuthor godoc
// @Summary List another user's journal entries
// @Description Returns the target's entries restricted to the tiers the caller may see.
// @Tags journals
// @Produce json
// @Param userID path string true "Author user ID"
// @Success 200 {object} dto.JournalsResponse
// @Security BearerAuth
// @Router /journals/user/{userID} [get]
func (h *journalHandler) listByAuthor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	journals, err := h.journalService.ListByAuthor(c.Request.Context(), userID, c.Param("userID"))
	if err != nil {
		respondError(c, logger, err, "Journals not found")
		return
	}
	c.JSON(http.StatusOK, dto.JournalsResponse{Journals: journals})
}

// getByDate godoc
// @Summary Get the caller's entry for one date
// @Tags journals
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.Journal
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/date/{date} [get]
func (h *journalHandler) getByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetOwnByDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, logger, err, "No entry for this date")
		return
	}
	c.JSON(http.StatusOK, journal)
}

// listMonth godoc
// @Summary List the caller's entries for one month
// @Description Returns the entries and the distinct dates written in the month.
// @Tags journals
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.JournalsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/month/{year}/{month} [get]
func (h *journalHandler) listMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month"})
		return
	}

	journals, err := h.journalService.ListMonth(c.Request.Context(), userID, year, month)
	if err != nil {
		respondError(c, logger, err, "Journals not found")
		return
	}

	dates := make([]string, 0, len(journals))
	for _, j := range journals {
		dates = append(dates, j.JournalDate)
	}
	c.JSON(http.StatusOK, gin.H{"journals": journals, "dates": dates})
}
