package repositories

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// ReactionRepositoryFacade manages the like ledger. Every mutation recounts
// the journal's likes from the ledger and writes the snapshot back onto the
// journal row inside the same transaction; the ledger stays authoritative.
type ReactionRepositoryFacade interface {
	// ToggleLike removes the caller's like when present, otherwise inserts
	// one. Returns whether the journal is liked afterwards and the
	// recomputed like count.
	ToggleLike(ctx context.Context, userID, journalID string) (liked bool, likesCount int, err error)

	// AddLike inserts a like. Returns apperrors.ErrDuplicate when the user
	// already liked the journal.
	AddLike(ctx context.Context, userID, journalID string) (likesCount int, err error)

	// RemoveLike deletes a like. Returns apperrors.ErrNotFound when there is
	// none to delete.
	RemoveLike(ctx context.Context, userID, journalID string) (likesCount int, err error)

	// ListByJournal returns the journal's reactions with reacting users' profiles.
	ListByJournal(ctx context.Context, journalID string) ([]domain.ReactionDetail, error)

	// ListLikedJournalIDs returns the ids of every journal the user has liked.
	ListLikedJournalIDs(ctx context.Context, userID string) ([]string, error)

	// CountByJournalIDs returns like counts from the ledger for each given journal.
	CountByJournalIDs(ctx context.Context, journalIDs []string) (map[string]int, error)
}
