package pgsql

import (
	"context"
	"fmt"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCircleRepository struct {
	BaseRepository
}

func newPgxCircleRepository(db *pgxpool.Pool) portsrepo.CircleRepositoryFacade {
	return &PgxCircleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CircleRepositoryFacade = (*PgxCircleRepository)(nil)

func (r *PgxCircleRepository) AddMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	query := `
        INSERT INTO close_circle (owner_id, member_id, created_at)
        VALUES ($1, $2, now())
        ON CONFLICT (owner_id, member_id) DO NOTHING;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, ownerID, memberID)
	if err != nil {
		return false, fmt.Errorf("failed to add circle member: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxCircleRepository) RemoveMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	query := `DELETE FROM close_circle WHERE owner_id = $1 AND member_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, ownerID, memberID)
	if err != nil {
		return false, fmt.Errorf("failed to remove circle member: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxCircleRepository) IsMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM close_circle WHERE owner_id = $1 AND member_id = $2);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, ownerID, memberID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check circle membership: %w", err)
	}
	return exists, nil
}

func (r *PgxCircleRepository) ListMemberIDs(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT member_id FROM close_circle WHERE owner_id = $1;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle member ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan circle member id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating circle member ids: %w", rows.Err())
	}
	return ids, nil
}

func (r *PgxCircleRepository) ListOwnerIDs(ctx context.Context, memberID string) ([]string, error) {
	query := `SELECT owner_id FROM close_circle WHERE member_id = $1;`
	rows, err := r.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle owner ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan circle owner id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating circle owner ids: %w", rows.Err())
	}
	return ids, nil
}

func (r *PgxCircleRepository) ListMembers(ctx context.Context, ownerID string) ([]domain.CircleMember, error) {
	query := `
        SELECT u.user_id, u.name, u.username, u.profile_image, u.bio, u.location, cc.created_at
        FROM close_circle cc
        JOIN users u ON u.user_id = cc.member_id
        WHERE cc.owner_id = $1
        ORDER BY cc.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle members: %w", err)
	}
	return scanCircleMembers(rows)
}

func (r *PgxCircleRepository) CountMembers(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM close_circle WHERE owner_id = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count circle members: %w", err)
	}
	return count, nil
}
