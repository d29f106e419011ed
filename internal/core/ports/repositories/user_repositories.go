package repositories

import (
	"context"
	"time"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique handle.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile updates a user's mutable profile attributes.
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdateStats writes back the cached aggregate counters.
	UpdateStats(ctx context.Context, userID string, stats domain.UserStats) error
}

// UserCredentialManager defines operations on stored credentials and tokens.
type UserCredentialManager interface {
	// UpdateRefreshToken stores the hash and expiry of a freshly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// ClearRefreshToken removes any stored refresh token for the user.
	ClearRefreshToken(ctx context.Context, userID string) error

	// SetResetToken stores a password-reset token hash with its expiry.
	SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error

	// FindUserByResetTokenHash retrieves a user by a non-expired reset token hash.
	FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// UpdatePassword replaces the password hash and clears any reset token.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// UserDiscovery defines search and suggestion queries over users.
type UserDiscovery interface {
	// SearchUsers matches name or username case-insensitively, excluding the viewer.
	SearchUsers(ctx context.Context, viewerID string, query string, limit int) ([]domain.CircleMember, error)

	// SuggestUsers samples random users excluding the viewer and the given ids.
	SuggestUsers(ctx context.Context, viewerID string, excludeIDs []string, limit int) ([]domain.CircleMember, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserCredentialManager
	UserDiscovery
}
