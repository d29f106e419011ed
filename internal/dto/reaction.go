package dto

import "github.com/inkwellhq/inkwell_backend/internal/core/domain"

// ToggleReactionRequest names the journal whose like state is toggled.
type ToggleReactionRequest struct {
	JournalID string `json:"journalID" binding:"required"`
}

// ReactionResponse reports the outcome of a like mutation.
type ReactionResponse struct {
	Message    string `json:"message"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likesCount"`
}

// ReactionsResponse wraps a journal's reaction listing.
type ReactionsResponse struct {
	Reactions []domain.ReactionDetail `json:"reactions"`
}

// LikedJournalsResponse lists the ids of journals the caller has liked.
type LikedJournalsResponse struct {
	LikedJournals []string `json:"likedJournals"`
}
