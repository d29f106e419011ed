package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// CircleSvcFacade maintains close-circle membership outside the request
// state machine: one-sided adds and removals with set semantics.
type CircleSvcFacade interface {
	// AddMember puts memberID into ownerID's circle.
	AddMember(ctx context.Context, ownerID, memberID string) error

	// RemoveMember takes memberID out of ownerID's circle and returns the
	// new circle size.
	RemoveMember(ctx context.Context, ownerID, memberID string) (int, error)

	// ListMembers returns the circle with member profiles, newest first.
	ListMembers(ctx context.Context, ownerID string) ([]domain.CircleMember, error)

	// CountMembers returns the circle size.
	CountMembers(ctx context.Context, ownerID string) (int, error)
}
