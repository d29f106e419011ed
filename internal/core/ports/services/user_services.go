package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new password-based account.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateProfile updates the caller's profile attributes.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// UpdateRefreshToken stores the hash and expiry of an issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry int64) error

	// ClearRefreshToken invalidates the user's refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateFromGoogle deduplicates by email and creates an account
	// for a first-time federated login, generating a unique username.
	FindOrCreateFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error)

	// StartPasswordReset issues a reset token and mails its link to the user.
	StartPasswordReset(ctx context.Context, email string) error

	// CompletePasswordReset validates a reset token and sets the new password.
	CompletePasswordReset(ctx context.Context, rawToken string, newPassword string) error
}

// UserDiscoverySvc defines search and suggestion operations over users.
type UserDiscoverySvc interface {
	// SearchUsers matches name or username, excluding the caller.
	SearchUsers(ctx context.Context, viewerID string, query string, limit int) ([]domain.CircleMember, error)

	// SuggestUsers samples users outside the caller's close circle.
	SuggestUsers(ctx context.Context, viewerID string, limit int) ([]domain.CircleMember, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
	UserDiscoverySvc
}
