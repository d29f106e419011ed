package models

import "time"

// Journal is the journals table row. JournalDate is a DATE column; the
// (author_id, journal_date) pair is unique.
type Journal struct {
	JournalID   string    `db:"journal_id"`
	AuthorID    string    `db:"author_id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	JournalDate time.Time `db:"journal_date"`
	Visibility  string    `db:"visibility"`
	IsAnonymous bool      `db:"is_anonymous"`
	Images      []string  `db:"images"`
	LikesCount  int       `db:"likes_count"`
	ReadsCount  int       `db:"reads_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
