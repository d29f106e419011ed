package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
)

// statsService derives aggregates from journal state. The cached counters on
// the user row are a snapshot, never authoritative.
type statsService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewStatsService creates a new statsService.
func NewStatsService(journalRepo portsrepo.JournalRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.StatsSvcFacade {
	return &statsService{
		journalRepo: journalRepo,
		userRepo:    userRepo,
	}
}

// ComputeStats derives the user's current stats: summed counters plus the
// trailing-window consistency score.
func (s *statsService) ComputeStats(ctx context.Context, userID string) (domain.UserStats, error) {
	likes, reads, count, err := s.journalRepo.SumCountersByAuthor(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to sum journal counters: %w", err)
	}

	since := time.Now().AddDate(0, 0, -domain.ConsistencyWindowDays)
	activeDays, err := s.journalRepo.CountDistinctCreationDays(ctx, userID, since)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to count active days: %w", err)
	}

	return domain.UserStats{
		TotalLikes:     likes,
		TotalReads:     reads,
		Consistency:    domain.ConsistencyScore(activeDays),
		JournalsCount:  count,
		RecentActivity: activeDays,
	}, nil
}

// RefreshStats derives the stats and writes the snapshot onto the user row.
func (s *statsService) RefreshStats(ctx context.Context, userID string) (domain.UserStats, error) {
	stats, err := s.ComputeStats(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}
	if err := s.userRepo.UpdateStats(ctx, userID, stats); err != nil {
		return domain.UserStats{}, fmt.Errorf("failed to store stats snapshot: %w", err)
	}
	return stats, nil
}
