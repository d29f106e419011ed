package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// StatsSvcFacade derives aggregate stats from journal state. The cached
// counters on the user row are a convenience snapshot, never authoritative.
type StatsSvcFacade interface {
	// ComputeStats derives the user's current stats.
	ComputeStats(ctx context.Context, userID string) (domain.UserStats, error)

	// RefreshStats derives the stats and writes the snapshot onto the user row.
	RefreshStats(ctx context.Context, userID string) (domain.UserStats, error)
}
