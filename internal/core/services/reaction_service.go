package services

import (
	"context"
	"fmt"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
)

// reactionService owns the like ledger. Every mutation verifies the journal
// exists first so likes can't accumulate against deleted entries.
type reactionService struct {
	reactionRepo portsrepo.ReactionRepositoryFacade
	journalRepo  portsrepo.JournalRepositoryFacade
}

// NewReactionService creates a new reactionService.
func NewReactionService(reactionRepo portsrepo.ReactionRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.ReactionSvcFacade {
	return &reactionService{
		reactionRepo: reactionRepo,
		journalRepo:  journalRepo,
	}
}

func (s *reactionService) Toggle(ctx context.Context, userID, journalID string) (bool, int, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return false, 0, err
	}
	liked, likesCount, err := s.reactionRepo.ToggleLike(ctx, userID, journalID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, likesCount, nil
}

func (s *reactionService) Like(ctx context.Context, userID, journalID string) (int, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return 0, err
	}
	return s.reactionRepo.AddLike(ctx, userID, journalID)
}

func (s *reactionService) Unlike(ctx context.Context, userID, journalID string) (int, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return 0, err
	}
	return s.reactionRepo.RemoveLike(ctx, userID, journalID)
}

func (s *reactionService) ListByJournal(ctx context.Context, viewerID, journalID string) ([]domain.ReactionDetail, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return nil, err
	}
	return s.reactionRepo.ListByJournal(ctx, journalID)
}

func (s *reactionService) ListLiked(ctx context.Context, userID string) ([]string, error) {
	return s.reactionRepo.ListLikedJournalIDs(ctx, userID)
}
