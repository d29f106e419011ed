package models

import "time"

// FriendRequest is the friend_requests table row. A partial unique index on
// the unordered (from_id, to_id) pair enforces at most one pending request
// per pair.
type FriendRequest struct {
	RequestID string    `db:"request_id"`
	FromID    string    `db:"from_id"`
	ToID      string    `db:"to_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
