package domain

import "time"

// ReactionLike is the only reaction type currently supported.
const ReactionLike = "like"

// Reaction is a per-user-per-journal like record. The (user, journal, type)
// triple is unique; toggling an existing reaction removes it.
type Reaction struct {
	ReactionID string    `json:"reactionID"`
	JournalID  string    `json:"journalID"`
	UserID     string    `json:"userID"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReactionDetail is a reaction joined with the reacting user's public profile.
type ReactionDetail struct {
	Reaction
	User FeedAuthor `json:"user"`
}
