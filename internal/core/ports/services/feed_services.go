package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// FeedSvcFacade resolves visibility-scoped feed pages. Fetching a page
// counts one read impression per returned entry.
type FeedSvcFacade interface {
	// PublicFeed returns one page of public entries.
	PublicFeed(ctx context.Context, viewerID string, page, limit int) (*dto.FeedResponse, error)

	// CircleFeed returns one page of close-circle entries authored by the
	// viewer's circle.
	CircleFeed(ctx context.Context, viewerID string, page, limit int) (*dto.FeedResponse, error)
}
