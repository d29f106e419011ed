package dto

import "github.com/inkwellhq/inkwell_backend/internal/core/domain"

// SendFriendRequestRequest names the recipient of a new friend request.
type SendFriendRequestRequest struct {
	To string `json:"to" binding:"required"`
}

// FriendRequestResponse wraps a single friend request.
type FriendRequestResponse struct {
	Message       string                      `json:"message,omitempty"`
	FriendRequest *domain.FriendRequestDetail `json:"friendRequest,omitempty"`
}

// FriendRequestsResponse wraps a request listing.
type FriendRequestsResponse struct {
	Requests []domain.FriendRequestDetail `json:"requests"`
	Count    int                          `json:"count"`
}

// RelationStatusResponse reports the pair status from the caller's side.
type RelationStatusResponse struct {
	Status domain.RelationStatus `json:"status"`
}
