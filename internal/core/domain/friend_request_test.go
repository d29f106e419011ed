package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewedBy(t *testing.T) {
	pending := FriendRequest{RequestID: "r1", FromID: "alice", ToID: "bob", Status: FriendRequestPending}

	assert.Equal(t, RelationPending, pending.ViewedBy("alice"), "sender sees pending")
	assert.Equal(t, RelationReceived, pending.ViewedBy("bob"), "recipient sees received")

	accepted := FriendRequest{RequestID: "r2", FromID: "alice", ToID: "bob", Status: FriendRequestAccepted}
	assert.Equal(t, RelationAccepted, accepted.ViewedBy("alice"))
	assert.Equal(t, RelationAccepted, accepted.ViewedBy("bob"), "accepted looks the same from both sides")

	rejected := FriendRequest{RequestID: "r3", FromID: "alice", ToID: "bob", Status: FriendRequestRejected}
	assert.Equal(t, RelationRejected, rejected.ViewedBy("bob"))
}
