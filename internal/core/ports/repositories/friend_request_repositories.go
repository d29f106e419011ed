package repositories

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// FriendRequestReader defines read operations over friend requests.
type FriendRequestReader interface {
	// FindRequestByID retrieves a request by id.
	FindRequestByID(ctx context.Context, requestID string) (*domain.FriendRequest, error)

	// FindRequestBetween retrieves the most recent request between the
	// unordered pair {a, b}, in either direction.
	FindRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error)

	// FindActiveRequestBetween is like FindRequestBetween but only considers
	// pending and accepted records, the ones that block a new request.
	FindActiveRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error)

	// ListPendingForUser returns pending requests addressed to the user,
	// joined with the sender's profile, newest first.
	ListPendingForUser(ctx context.Context, toID string) ([]domain.FriendRequestDetail, error)

	// ListSentByUser returns every request the user has sent, joined with
	// the recipient's profile, newest first.
	ListSentByUser(ctx context.Context, fromID string) ([]domain.FriendRequestDetail, error)
}

// FriendRequestWriter defines the state transitions of the request lifecycle.
type FriendRequestWriter interface {
	// SaveRequest persists a new pending request.
	SaveRequest(ctx context.Context, request domain.FriendRequest) error

	// AcceptRequest transitions the request to accepted and inserts each
	// party into the other's close circle, all in one transaction. The status
	// update is conditional on the stored status still being pending: it
	// returns apperrors.ErrConflict when the request was already processed
	// and apperrors.ErrNotFound when it does not exist.
	AcceptRequest(ctx context.Context, requestID string) (*domain.FriendRequest, error)

	// RejectRequest transitions the request to rejected under the same
	// pending-only guard as AcceptRequest. No circle mutation.
	RejectRequest(ctx context.Context, requestID string) (*domain.FriendRequest, error)

	// DeletePending deletes a pending request sent by fromID to toID.
	// Returns apperrors.ErrNotFound when no such pending request exists.
	DeletePending(ctx context.Context, fromID, toID string) error

	// DeleteAcceptedBetween removes any accepted record between the pair so
	// a later request is possible again. Deleting nothing is not an error.
	DeleteAcceptedBetween(ctx context.Context, a, b string) error
}

// FriendRequestRepositoryFacade combines all friend-request repository interfaces.
type FriendRequestRepositoryFacade interface {
	FriendRequestReader
	FriendRequestWriter
}
