package dto

import "github.com/inkwellhq/inkwell_backend/internal/core/domain"

// CreateJournalRequest is the payload for creating a dated entry.
type CreateJournalRequest struct {
	Title       string            `json:"title" binding:"required"`
	Content     string            `json:"content" binding:"required"`
	JournalDate string            `json:"journaldate" binding:"required,datetime=2006-01-02"`
	Visibility  domain.Visibility `json:"visibility"`
	IsAnonymous bool              `json:"isAnonymous"`
}

// UpdateJournalRequest is the payload for updating an entry. Visibility is a
// pointer so an omitted field keeps the stored tier; RemoveImages clears the
// image list.
type UpdateJournalRequest struct {
	Title        string             `json:"title" binding:"required"`
	Content      string             `json:"content" binding:"required"`
	Visibility   *domain.Visibility `json:"visibility"`
	IsAnonymous  *bool              `json:"isAnonymous"`
	RemoveImages bool               `json:"removeImages"`
}

// JournalsResponse wraps a plain journal listing.
type JournalsResponse struct {
	Journals []domain.Journal `json:"journals"`
}

// MonthDatesResponse lists the calendar dates with an entry in one month.
type MonthDatesResponse struct {
	Dates []string `json:"dates"`
}
