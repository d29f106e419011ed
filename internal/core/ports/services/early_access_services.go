package services

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// EarlyAccessSvcFacade records pre-launch interest signups.
type EarlyAccessSvcFacade interface {
	// RegisterInterest validates and stores a signup.
	RegisterInterest(ctx context.Context, req dto.EarlyAccessRequest) (*domain.EarlyAccessSignup, error)
}
