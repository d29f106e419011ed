package domain

import "time"

// User represents an identity in the domain. PasswordHash is empty for
// accounts created through federated login.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Location     string `json:"location,omitempty"`

	// Cached aggregates, recomputable from journal state at any time.
	TotalLikes  int `json:"totalLikes"`
	TotalReads  int `json:"totalReads"`
	Consistency int `json:"consistency"`

	ResetTokenHash   string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	Timestamps
}

// GoogleUserInfo is the verified profile returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// CircleMember is the public projection of a close-circle member.
type CircleMember struct {
	UserID       string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	MemberSince  time.Time `json:"memberSince"`
}
