package models

import (
	"database/sql"
	"time"
)

// User is the users table row. Close-circle membership lives in the
// close_circle join table, not here.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	Name         string         `db:"name"`
	ProfileImage sql.NullString `db:"profile_image"`
	Bio          sql.NullString `db:"bio"`
	Location     sql.NullString `db:"location"`

	TotalLikes  int `db:"total_likes"`
	TotalReads  int `db:"total_reads"`
	Consistency int `db:"consistency"`

	ResetTokenHash   sql.NullString `db:"reset_token_hash"`
	ResetTokenExpiry sql.NullTime   `db:"reset_token_expiry"`

	RefreshTokenHash   sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiry sql.NullTime   `db:"refresh_token_expiry"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
