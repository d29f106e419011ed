package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// mobileNumberPattern matches a ten-digit Indian mobile number.
var mobileNumberPattern = regexp.MustCompile(`^[6-9]\d{9}$`)

type earlyAccessService struct {
	signupRepo portsrepo.EarlyAccessRepositoryFacade
}

// NewEarlyAccessService creates a new earlyAccessService.
func NewEarlyAccessService(signupRepo portsrepo.EarlyAccessRepositoryFacade) portssvc.EarlyAccessSvcFacade {
	return &earlyAccessService{signupRepo: signupRepo}
}

// RegisterInterest validates and stores a signup, one per mobile number.
func (s *earlyAccessService) RegisterInterest(ctx context.Context, req dto.EarlyAccessRequest) (*domain.EarlyAccessSignup, error) {
	if !mobileNumberPattern.MatchString(req.MobileNumber) {
		return nil, apperrors.ErrValidation
	}

	signup := domain.EarlyAccessSignup{
		SignupID:     uuid.NewString(),
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		BusinessName: req.BusinessName,
		CreatedAt:    time.Now(),
	}

	if err := s.signupRepo.SaveSignup(ctx, signup); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save early access signup: %w", err)
	}
	return &signup, nil
}
