package services

import (
	"context"
	"fmt"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/utils/pagination"
)

const (
	feedDefaultLimit = 10
	feedMaxLimit     = 50
)

// feedService resolves visibility-scoped feed pages. Each returned entry
// counts one read impression; the reported read count already includes it.
type feedService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	reactionRepo portsrepo.ReactionRepositoryFacade
	circleRepo   portsrepo.CircleRepositoryFacade
}

// NewFeedService creates a new feedService.
func NewFeedService(journalRepo portsrepo.JournalRepositoryFacade, reactionRepo portsrepo.ReactionRepositoryFacade, circleRepo portsrepo.CircleRepositoryFacade) portssvc.FeedSvcFacade {
	return &feedService{
		journalRepo:  journalRepo,
		reactionRepo: reactionRepo,
		circleRepo:   circleRepo,
	}
}

func (s *feedService) PublicFeed(ctx context.Context, viewerID string, page, limit int) (*dto.FeedResponse, error) {
	page, limit = pagination.Normalize(page, limit, feedDefaultLimit, feedMaxLimit)

	journals, total, err := s.journalRepo.FindPublicJournals(ctx, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load public feed: %w", err)
	}
	return s.assemblePage(ctx, journals, page, limit, total)
}

func (s *feedService) CircleFeed(ctx context.Context, viewerID string, page, limit int) (*dto.FeedResponse, error) {
	page, limit = pagination.Normalize(page, limit, feedDefaultLimit, feedMaxLimit)

	// The feed shows authors whose circle contains the viewer, the same
	// membership direction the per-journal visibility check uses.
	authorIDs, err := s.circleRepo.ListOwnerIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve circles containing viewer: %w", err)
	}
	journals, total, err := s.journalRepo.FindCircleJournals(ctx, authorIDs, limit, pagination.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load circle feed: %w", err)
	}
	return s.assemblePage(ctx, journals, page, limit, total)
}

// assemblePage turns one page of journals into feed entries: likes come from
// the reaction ledger, reads get this impression counted in, and the author
// block is nulled on anonymous entries.
func (s *feedService) assemblePage(ctx context.Context, journals []domain.Journal, page, limit int, total int64) (*dto.FeedResponse, error) {
	journalIDs := make([]string, 0, len(journals))
	authorIDs := make([]string, 0, len(journals))
	for _, j := range journals {
		journalIDs = append(journalIDs, j.JournalID)
		if !j.IsAnonymous {
			authorIDs = append(authorIDs, j.AuthorID)
		}
	}

	likeCounts, err := s.reactionRepo.CountByJournalIDs(ctx, journalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate likes: %w", err)
	}
	authors, err := s.journalRepo.FindAuthorsByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed authors: %w", err)
	}
	if err := s.journalRepo.IncrementReads(ctx, journalIDs); err != nil {
		return nil, fmt.Errorf("failed to count read impressions: %w", err)
	}

	entries := make([]domain.FeedEntry, 0, len(journals))
	for _, j := range journals {
		entry := domain.FeedEntry{
			JournalID:   j.JournalID,
			Title:       j.Title,
			Content:     j.Content,
			JournalDate: j.JournalDate,
			Visibility:  j.Visibility,
			IsAnonymous: j.IsAnonymous,
			Images:      j.Images,
			Likes:       likeCounts[j.JournalID],
			Reads:       j.ReadsCount + 1,
			Timestamps:  j.Timestamps,
		}
		if !j.IsAnonymous {
			if author, ok := authors[j.AuthorID]; ok {
				entry.Author = &author
			}
		}
		entries = append(entries, entry)
	}

	resp := dto.ToFeedResponse(entries, pagination.Build(page, limit, total))
	return &resp, nil
}
