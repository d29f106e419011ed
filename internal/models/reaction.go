package models

import "time"

// Reaction is the reactions table row, unique per (user_id, journal_id, type).
type Reaction struct {
	ReactionID string    `db:"reaction_id"`
	JournalID  string    `db:"journal_id"`
	UserID     string    `db:"user_id"`
	Type       string    `db:"type"`
	CreatedAt  time.Time `db:"created_at"`
}
