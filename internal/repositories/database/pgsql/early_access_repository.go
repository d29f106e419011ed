package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEarlyAccessRepository struct {
	BaseRepository
}

func newPgxEarlyAccessRepository(db *pgxpool.Pool) portsrepo.EarlyAccessRepositoryFacade {
	return &PgxEarlyAccessRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EarlyAccessRepositoryFacade = (*PgxEarlyAccessRepository)(nil)

func (r *PgxEarlyAccessRepository) SaveSignup(ctx context.Context, signup domain.EarlyAccessSignup) error {
	query := `
        INSERT INTO early_access_signups (signup_id, full_name, mobile_number, business_name, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		signup.SignupID,
		signup.FullName,
		signup.MobileNumber,
		nullString(signup.BusinessName),
		signup.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // mobile number already registered
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save early access signup: %w", err)
	}
	return nil
}
