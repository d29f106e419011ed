package dto

import (
	"time"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// UserResponse is the caller-facing projection of their own account.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileResponse is the caller's account decorated with derived stats.
type ProfileResponse struct {
	UserResponse
	TotalLikes    int `json:"totalLikes"`
	TotalReads    int `json:"totalReads"`
	Consistency   int `json:"consistency"`
	JournalsCount int `json:"journalsCount"`
}

// PublicProfileResponse is another user's profile as exposed to any
// authenticated viewer. Email is never included.
type PublicProfileResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"accountCreatedAt"`

	TotalLikes    int `json:"totalLikes"`
	TotalReads    int `json:"totalReads"`
	Consistency   int `json:"consistency"`
	JournalsCount int `json:"journalCount"`
}

// UpdateProfileRequest updates the caller's profile. ProfileImage is a
// pointer so an omitted field leaves the stored image untouched.
type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Username     string  `json:"username" binding:"required,min=3,max=30"`
	Bio          string  `json:"bio" binding:"max=500"`
	Location     string  `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

// SearchUsersParams are the query parameters for user search.
type SearchUsersParams struct {
	Query string `form:"q" binding:"required,min=2"`
	Limit int    `form:"limit,default=10"`
}

// SuggestedUsersParams are the query parameters for circle suggestions.
type SuggestedUsersParams struct {
	Limit int `form:"limit,default=8"`
}

// CircleMembersResponse wraps a close-circle listing.
type CircleMembersResponse struct {
	CloseFriends []domain.CircleMember `json:"closeFriends"`
}

// CircleCountResponse reports the size of the caller's close circle.
type CircleCountResponse struct {
	CloseFriends int `json:"closeFriends"`
}

// UsersResponse wraps search and suggestion results.
type UsersResponse struct {
	Users []domain.CircleMember `json:"users"`
	Count int                   `json:"count,omitempty"`
}

// ToUserResponse converts a domain user to its self-view projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Bio:          user.Bio,
		Location:     user.Location,
		CreatedAt:    user.CreatedAt,
	}
}

// ToProfileResponse combines a user with their derived stats.
func ToProfileResponse(user *domain.User, stats domain.UserStats) ProfileResponse {
	return ProfileResponse{
		UserResponse:  ToUserResponse(user),
		TotalLikes:    stats.TotalLikes,
		TotalReads:    stats.TotalReads,
		Consistency:   stats.Consistency,
		JournalsCount: stats.JournalsCount,
	}
}

// ToPublicProfileResponse builds the viewer-facing profile of another user.
func ToPublicProfileResponse(user *domain.User, stats domain.UserStats) PublicProfileResponse {
	return PublicProfileResponse{
		UserID:        user.UserID,
		Name:          user.Name,
		Username:      user.Username,
		ProfileImage:  user.ProfileImage,
		Bio:           user.Bio,
		Location:      user.Location,
		CreatedAt:     user.CreatedAt,
		TotalLikes:    stats.TotalLikes,
		TotalReads:    stats.TotalReads,
		Consistency:   stats.Consistency,
		JournalsCount: stats.JournalsCount,
	}
}
