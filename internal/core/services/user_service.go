package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
	"github.com/inkwellhq/inkwell_backend/internal/platform/config"
	"github.com/inkwellhq/inkwell_backend/internal/utils"
)

const (
	resetTokenBytes  = 32
	resetTokenExpiry = 10 * time.Minute
)

// userService owns accounts, credentials and discovery.
type userService struct {
	cfg        *config.Config
	userRepo   portsrepo.UserRepositoryFacade
	circleRepo portsrepo.CircleRepositoryFacade
	mailer     portssvc.Mailer
}

// NewUserService creates a new userService.
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, circleRepo portsrepo.CircleRepositoryFacade, mailer portssvc.Mailer) portssvc.UserSvcFacade {
	return &userService{
		cfg:        cfg,
		userRepo:   userRepo,
		circleRepo: circleRepo,
		mailer:     mailer,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// Register creates a new password-based account. Username and email
// uniqueness is enforced by the store.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Bio = req.Bio
	user.Location = req.Location
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry int64) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, time.Unix(expiry, 0))
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// AuthenticateUser verifies the username/password pair. Both a missing user
// and a wrong password come back as ErrUnauthorized so callers can't
// probe for valid usernames.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateFromGoogle deduplicates by email; first-time federated logins
// get an account with a generated unique username and no password.
func (s *userService) FindOrCreateFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" {
		return nil, apperrors.ErrValidation
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user by email: %w", err)
	}

	username, err := s.uniqueUsername(ctx, utils.UsernameBase(info.Name))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        info.Email,
		Name:         info.Name,
		ProfileImage: info.Picture,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user from google login: %w", err)
	}
	return &user, nil
}

// uniqueUsername appends an incrementing numeric suffix until the handle is free.
func (s *userService) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 0; ; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}
		_, err := s.userRepo.FindUserByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
	}
}

// StartPasswordReset issues a reset token and mails its link. An unknown
// email is reported as success to the caller to avoid account enumeration;
// the handler is expected to treat ErrNotFound that way.
func (s *userService) StartPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	rawToken, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(resetTokenExpiry)
	if err := s.userRepo.SetResetToken(ctx, user.UserID, utils.HashOpaqueToken(rawToken), expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendBaseURL, rawToken)
	body := fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. It expires in 10 minutes.\n\n%s\n", user.Name, resetLink)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

// CompletePasswordReset validates a reset token and sets the new password.
func (s *userService) CompletePasswordReset(ctx context.Context, rawToken string, newPassword string) error {
	user, err := s.userRepo.FindUserByResetTokenHash(ctx, utils.HashOpaqueToken(rawToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *userService) SearchUsers(ctx context.Context, viewerID string, query string, limit int) ([]domain.CircleMember, error) {
	return s.userRepo.SearchUsers(ctx, viewerID, query, limit)
}

// SuggestUsers samples users outside the caller's close circle.
func (s *userService) SuggestUsers(ctx context.Context, viewerID string, limit int) ([]domain.CircleMember, error) {
	memberIDs, err := s.circleRepo.ListMemberIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle for suggestions: %w", err)
	}
	return s.userRepo.SuggestUsers(ctx, viewerID, memberIDs, limit)
}
