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
)

// friendRequestService runs the request lifecycle. Acceptance is the only
// path into close-circle membership.
type friendRequestService struct {
	requestRepo portsrepo.FriendRequestRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewFriendRequestService creates a new friendRequestService.
func NewFriendRequestService(requestRepo portsrepo.FriendRequestRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.FriendRequestSvcFacade {
	return &friendRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// SendRequest creates a pending request. A pending or accepted record
// between the pair blocks a new one; rejected and cancelled history does not.
func (s *friendRequestService) SendRequest(ctx context.Context, fromID, toID string) (*domain.FriendRequestDetail, error) {
	if fromID == toID {
		return nil, apperrors.ErrValidation
	}

	recipient, err := s.userRepo.FindUserByID(ctx, toID)
	if err != nil {
		return nil, err
	}

	active, err := s.requestRepo.FindActiveRequestBetween(ctx, fromID, toID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing request: %w", err)
	}
	if active != nil {
		return nil, apperrors.ErrConflict
	}

	now := time.Now()
	request := domain.FriendRequest{
		RequestID: uuid.NewString(),
		FromID:    fromID,
		ToID:      toID,
		Status:    domain.FriendRequestPending,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race with a concurrent send between the same pair.
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to save friend request: %w", err)
	}

	return &domain.FriendRequestDetail{
		FriendRequest: request,
		To: &domain.FeedAuthor{
			UserID:       recipient.UserID,
			Name:         recipient.Name,
			Username:     recipient.Username,
			ProfileImage: recipient.ProfileImage,
			Bio:          recipient.Bio,
			Location:     recipient.Location,
		},
	}, nil
}

// recipientOnly verifies the caller is the request's recipient before a
// transition. The repository's pending-only guard still decides races.
func (s *friendRequestService) recipientOnly(ctx context.Context, userID, requestID string) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ToID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// AcceptRequest transitions the request and makes circle membership mutual.
func (s *friendRequestService) AcceptRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	if err := s.recipientOnly(ctx, userID, requestID); err != nil {
		return nil, err
	}
	return s.requestRepo.AcceptRequest(ctx, requestID)
}

// RejectRequest transitions a pending request to rejected.
func (s *friendRequestService) RejectRequest(ctx context.Context, userID, requestID string) (*domain.FriendRequest, error) {
	if err := s.recipientOnly(ctx, userID, requestID); err != nil {
		return nil, err
	}
	return s.requestRepo.RejectRequest(ctx, requestID)
}

// CancelRequest deletes a pending request; only the sender may cancel, which
// the (fromID, toID) key enforces.
func (s *friendRequestService) CancelRequest(ctx context.Context, fromID, toID string) error {
	return s.requestRepo.DeletePending(ctx, fromID, toID)
}

// StatusBetween reports the most recent record's status from the viewer's
// side; "none" when the pair has no history.
func (s *friendRequestService) StatusBetween(ctx context.Context, viewerID, otherID string) (domain.RelationStatus, *domain.FriendRequest, error) {
	request, err := s.requestRepo.FindRequestBetween(ctx, viewerID, otherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RelationNone, nil, nil
		}
		return domain.RelationNone, nil, fmt.Errorf("failed to find request between users: %w", err)
	}
	return request.ViewedBy(viewerID), request, nil
}

func (s *friendRequestService) ListPending(ctx context.Context, userID string) ([]domain.FriendRequestDetail, error) {
	return s.requestRepo.ListPendingForUser(ctx, userID)
}

func (s *friendRequestService) ListSent(ctx context.Context, userID string) ([]domain.FriendRequestDetail, error) {
	return s.requestRepo.ListSentByUser(ctx, userID)
}
