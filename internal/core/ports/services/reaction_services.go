package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// ReactionSvcFacade owns the like ledger.
type ReactionSvcFacade interface {
	// Toggle flips the caller's like on the journal and returns the new state.
	Toggle(ctx context.Context, userID, journalID string) (liked bool, likesCount int, err error)

	// Like adds a like; duplicate likes are a conflict.
	Like(ctx context.Context, userID, journalID string) (likesCount int, err error)

	// Unlike removes a like; a missing like is not found.
	Unlike(ctx context.Context, userID, journalID string) (likesCount int, err error)

	// ListByJournal returns a journal's reactions with user profiles.
	ListByJournal(ctx context.Context, viewerID, journalID string) ([]domain.ReactionDetail, error)

	// ListLiked returns the ids of journals the caller has liked.
	ListLiked(ctx context.Context, userID string) ([]string, error)
}
