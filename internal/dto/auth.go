package dto

import "github.com/inkwellhq/inkwell_backend/internal/core/domain"

// RegisterRequest is the payload for creating a password-based account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user and an access token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RefreshResponse carries a re-issued access token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest asks for a password-reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password using a reset token.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// GoogleCallbackParams are the query parameters Google redirects back with.
type GoogleCallbackParams struct {
	State string `form:"state" binding:"required"`
	Code  string `form:"code" binding:"required"`
}

// ToAuthResponse builds an AuthResponse from a domain user and signed token.
func ToAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{User: ToUserResponse(user), Token: token}
}
