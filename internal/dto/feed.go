package dto

import (
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	"github.com/inkwellhq/inkwell_backend/internal/utils/pagination"
)

// FeedParams are the pagination query parameters for feed endpoints.
type FeedParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// FeedResponse is one page of a visibility-scoped feed.
type FeedResponse struct {
	Journals    []domain.FeedEntry `json:"journals"`
	HasMore     bool               `json:"hasMore"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
	Total       int64              `json:"total"`
}

// ToFeedResponse assembles a feed page from entries and pagination metadata.
func ToFeedResponse(entries []domain.FeedEntry, page pagination.Page) FeedResponse {
	if entries == nil {
		entries = []domain.FeedEntry{}
	}
	return FeedResponse{
		Journals:    entries,
		HasMore:     page.HasMore,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
	}
}
