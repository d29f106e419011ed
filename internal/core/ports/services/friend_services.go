package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// FriendRequestSvcFacade is the friend-request lifecycle: a pending request
// is accepted, rejected, or cancelled by its sender; acceptance is the only
// path into close-circle membership.
type FriendRequestSvcFacade interface {
	// SendRequest creates a pending request from fromID to toID.
	SendRequest(ctx context.Context, fromID, toID string) (*domain.FriendRequestDetail, error)

	// AcceptRequest transitions a pending request to accepted and makes the
	// two close-circle memberships mutual. Only the recipient may accept.
	AcceptRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error)

	// RejectRequest transitions a pending request to rejected. Only the
	// recipient may reject.
	RejectRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error)

	// CancelRequest deletes a pending request; only the sender may cancel.
	CancelRequest(ctx context.Context, fromID, toID string) error

	// StatusBetween reports the pair's status from the viewer's perspective.
	StatusBetween(ctx context.Context, viewerID, otherID string) (domain.RelationStatus, *domain.FriendRequest, error)

	// ListPending returns pending requests addressed to the user.
	ListPending(ctx context.Context, userID string) ([]domain.FriendRequestDetail, error)

	// ListSent returns every request the user has sent.
	ListSent(ctx context.Context, userID string) ([]domain.FriendRequestDetail, error)
}
