package services

import (
	"context"
	"fmt"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
)

// circleService maintains close-circle membership outside the request state
// machine.
type circleService struct {
	circleRepo  portsrepo.CircleRepositoryFacade
	requestRepo portsrepo.FriendRequestRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewCircleService creates a new circleService.
func NewCircleService(circleRepo portsrepo.CircleRepositoryFacade, requestRepo portsrepo.FriendRequestRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CircleSvcFacade {
	return &circleService{
		circleRepo:  circleRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

func (s *circleService) AddMember(ctx context.Context, ownerID, memberID string) error {
	if ownerID == memberID {
		return apperrors.ErrValidation
	}
	if _, err := s.userRepo.FindUserByID(ctx, memberID); err != nil {
		return err
	}
	if _, err := s.circleRepo.AddMember(ctx, ownerID, memberID); err != nil {
		return fmt.Errorf("failed to add circle member: %w", err)
	}
	return nil
}

// RemoveMember takes memberID out of ownerID's circle and clears any accepted
// request record between the pair so a fresh request is possible later. The
// reverse membership is left to the other side.
func (s *circleService) RemoveMember(ctx context.Context, ownerID, memberID string) (int, error) {
	removed, err := s.circleRepo.RemoveMember(ctx, ownerID, memberID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove circle member: %w", err)
	}
	if !removed {
		return 0, apperrors.ErrNotFound
	}

	if err := s.requestRepo.DeleteAcceptedBetween(ctx, ownerID, memberID); err != nil {
		return 0, fmt.Errorf("failed to clear accepted request: %w", err)
	}

	count, err := s.circleRepo.CountMembers(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count circle members: %w", err)
	}
	return count, nil
}

func (s *circleService) ListMembers(ctx context.Context, ownerID string) ([]domain.CircleMember, error) {
	return s.circleRepo.ListMembers(ctx, ownerID)
}

func (s *circleService) CountMembers(ctx context.Context, ownerID string) (int, error) {
	return s.circleRepo.CountMembers(ctx, ownerID)
}
