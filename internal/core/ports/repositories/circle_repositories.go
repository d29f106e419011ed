package repositories

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// CircleRepositoryFacade manages the close_circle membership table. All
// writes have set semantics: re-adding a member is a no-op at the storage
// level.
type CircleRepositoryFacade interface {
	// AddMember inserts memberID into ownerID's circle. Returns false when
	// the membership already existed.
	AddMember(ctx context.Context, ownerID, memberID string) (bool, error)

	// RemoveMember deletes memberID from ownerID's circle. Returns false
	// when there was nothing to remove.
	RemoveMember(ctx context.Context, ownerID, memberID string) (bool, error)

	// IsMember reports whether memberID is in ownerID's circle.
	IsMember(ctx context.Context, ownerID, memberID string) (bool, error)

	// ListMemberIDs returns the ids of everyone in ownerID's circle.
	ListMemberIDs(ctx context.Context, ownerID string) ([]string, error)

	// ListOwnerIDs returns the ids of every owner whose circle contains
	// memberID. This is the membership direction close-circle visibility
	// checks use.
	ListOwnerIDs(ctx context.Context, memberID string) ([]string, error)

	// ListMembers returns circle members with their public profiles, newest first.
	ListMembers(ctx context.Context, ownerID string) ([]domain.CircleMember, error)

	// CountMembers returns the size of ownerID's circle.
	CountMembers(ctx context.Context, ownerID string) (int, error)
}
