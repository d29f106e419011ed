package domain

// FriendRequestStatus is the stored lifecycle state of a friend request.
// Accepted and rejected are terminal; a pending request may also be deleted
// by its sender.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// RelationStatus is the status of a pair as seen by one side. It extends the
// stored statuses with "none" (no record) and "received" (a pending request
// where the viewer is the recipient). Never persisted.
type RelationStatus string

const (
	RelationNone     RelationStatus = "none"
	RelationPending  RelationStatus = "pending"
	RelationReceived RelationStatus = "received"
	RelationAccepted RelationStatus = "accepted"
	RelationRejected RelationStatus = "rejected"
)

// FriendRequest links a sender to a recipient. At most one pending request
// may exist between any unordered pair at a time.
type FriendRequest struct {
	RequestID string              `json:"requestID"`
	FromID    string              `json:"fromID"`
	ToID      string              `json:"toID"`
	Status    FriendRequestStatus `json:"status"`
	Timestamps
}

// ViewedBy returns the request status from viewerID's perspective: a pending
// request shows as "received" on the recipient side so each side can tell
// "I sent this" from "I received this".
func (r FriendRequest) ViewedBy(viewerID string) RelationStatus {
	if r.Status == FriendRequestPending && r.ToID == viewerID {
		return RelationReceived
	}
	return RelationStatus(r.Status)
}

// FriendRequestDetail is a request joined with the counterpart's profile for
// pending/sent listings.
type FriendRequestDetail struct {
	FriendRequest
	From *FeedAuthor `json:"from,omitempty"`
	To   *FeedAuthor `json:"to,omitempty"`
}
