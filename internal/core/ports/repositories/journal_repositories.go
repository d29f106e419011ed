package repositories

import (
	"context"
	"time"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindJournalByID retrieves a journal by id.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindJournalByAuthorAndDate retrieves the author's entry for one
	// calendar date (YYYY-MM-DD).
	FindJournalByAuthorAndDate(ctx context.Context, authorID, date string) (*domain.Journal, error)

	// FindJournalsByAuthor returns the author's journals newest first,
	// restricted to the given visibility tiers. A nil slice means all tiers.
	FindJournalsByAuthor(ctx context.Context, authorID string, visibilities []domain.Visibility) ([]domain.Journal, error)

	// FindJournalsByAuthorInRange returns the author's journals whose
	// journal date falls in [from, to), both YYYY-MM-DD.
	FindJournalsByAuthorInRange(ctx context.Context, authorID, from, to string) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveJournal persists a new journal. Returns apperrors.ErrDuplicate
	// when the author already has an entry for the date.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournal updates title, content, visibility, anonymity and images.
	UpdateJournal(ctx context.Context, journal domain.Journal) error

	// DeleteJournal removes the journal and its reactions.
	DeleteJournal(ctx context.Context, journalID string) error

	// AppendImage appends a media URL to the journal's image list.
	AppendImage(ctx context.Context, journalID string, imageURL string) error
}

// FeedReader defines the visibility-scoped feed queries. Ordering is always
// creation time descending.
type FeedReader interface {
	// FindPublicJournals returns one page of public entries plus the total
	// count of public entries.
	FindPublicJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error)

	// FindCircleJournals returns one page of close-circle entries authored
	// by the given users plus the matching total.
	FindCircleJournals(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.Journal, int64, error)

	// IncrementReads bumps the read counter of every listed journal by one.
	IncrementReads(ctx context.Context, journalIDs []string) error

	// FindAuthorsByIDs returns the public author profiles for the given user ids.
	FindAuthorsByIDs(ctx context.Context, userIDs []string) (map[string]domain.FeedAuthor, error)
}

// JournalStatsReader defines aggregate queries used by the stats service.
type JournalStatsReader interface {
	// SumCountersByAuthor returns the summed like/read counters and the
	// journal count for the author.
	SumCountersByAuthor(ctx context.Context, authorID string) (likes int, reads int, count int, err error)

	// CountDistinctCreationDays counts the distinct calendar dates, by
	// creation timestamp, on which the author created at least one journal
	// since the given instant.
	CountDistinctCreationDays(ctx context.Context, authorID string, since time.Time) (int, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	FeedReader
	JournalStatsReader
}
