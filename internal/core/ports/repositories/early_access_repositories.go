package repositories

import (
	"context"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
)

// EarlyAccessRepositoryFacade stores pre-launch signups.
type EarlyAccessRepositoryFacade interface {
	// SaveSignup persists a signup. Returns apperrors.ErrDuplicate when the
	// mobile number is already registered.
	SaveSignup(ctx context.Context, signup domain.EarlyAccessSignup) error
}
