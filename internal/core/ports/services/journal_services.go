package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// JournalSvcFacade owns the journal CRUD surface. All write operations are
// restricted to the entry's author; reads apply the visibility rule.
type JournalSvcFacade interface {
	// CreateJournal creates the author's entry for one calendar date.
	CreateJournal(ctx context.Context, authorID string, req dto.CreateJournalRequest) (*domain.Journal, error)

	// GetJournal retrieves one entry if the viewer may see it. Does not
	// count as a read impression.
	GetJournal(ctx context.Context, viewerID, journalID string) (*domain.Journal, error)

	// UpdateJournal updates an entry; author only.
	UpdateJournal(ctx context.Context, authorID, journalID string, req dto.UpdateJournalRequest) (*domain.Journal, error)

	// DeleteJournal removes an entry; author only.
	DeleteJournal(ctx context.Context, authorID, journalID string) error

	// ListOwn returns all of the caller's entries, newest first.
	ListOwn(ctx context.Context, authorID string) ([]domain.Journal, error)

	// ListByAuthor returns targetID's entries restricted to the tiers the
	// viewer may see.
	ListByAuthor(ctx context.Context, viewerID, targetID string) ([]domain.Journal, error)

	// GetOwnByDate returns the caller's entry for one date (YYYY-MM-DD).
	GetOwnByDate(ctx context.Context, authorID, date string) (*domain.Journal, error)

	// ListMonth returns the caller's entries for one calendar month.
	ListMonth(ctx context.Context, authorID string, year, month int) ([]domain.Journal, error)

	// AttachImage appends an uploaded media URL to the entry; author only.
	AttachImage(ctx context.Context, authorID, journalID, imageURL string) error

	// ReplaceImages swaps the entry's image list; author only.
	ReplaceImages(ctx context.Context, authorID, journalID string, images []string) (*domain.Journal, error)
}
