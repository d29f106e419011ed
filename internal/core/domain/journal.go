package domain

// Visibility controls who may read a journal entry.
type Visibility string

const (
	VisibilityPrivate     Visibility = "private"
	VisibilityCloseCircle Visibility = "close-circle"
	VisibilityPublic      Visibility = "public"
)

// Valid reports whether v is one of the recognised visibility tiers.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityCloseCircle, VisibilityPublic:
		return true
	}
	return false
}

// Journal is a single dated content entry owned by one user. JournalDate is
// a calendar date in YYYY-MM-DD form; each author has at most one entry per
// date. LikesCount and ReadsCount are cached; the reaction ledger and view
// events are authoritative.
type Journal struct {
	JournalID   string     `json:"journalID"`
	AuthorID    string     `json:"authorID"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	JournalDate string     `json:"journaldate"`
	Visibility  Visibility `json:"visibility"`
	IsAnonymous bool       `json:"isAnonymous"`
	Images      []string   `json:"images"`
	LikesCount  int        `json:"likesCount"`
	ReadsCount  int        `json:"readsCount"`
	Timestamps
}

// FeedAuthor is the author block attached to feed entries. It is nil on
// anonymous entries.
type FeedAuthor struct {
	UserID       string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Location     string `json:"location,omitempty"`
}

// FeedEntry is a journal as presented in a feed: like counts come from the
// reaction ledger and reads already include the current impression. It is a
// deliberate projection rather than an embedded Journal so anonymous entries
// carry no author identity anywhere in the payload.
type FeedEntry struct {
	JournalID   string      `json:"journalID"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	JournalDate string      `json:"journaldate"`
	Visibility  Visibility  `json:"visibility"`
	IsAnonymous bool        `json:"isAnonymous"`
	Images      []string    `json:"images"`
	Likes       int         `json:"likes"`
	Reads       int         `json:"reads"`
	Author      *FeedAuthor `json:"author"`
	Timestamps
}
