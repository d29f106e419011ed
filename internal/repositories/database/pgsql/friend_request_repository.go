package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	"github.com/inkwellhq/inkwell_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFriendRequestRepository struct {
	BaseRepository
}

func newPgxFriendRequestRepository(db *pgxpool.Pool) portsrepo.FriendRequestRepositoryFacade {
	return &PgxFriendRequestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.FriendRequestRepositoryFacade = (*PgxFriendRequestRepository)(nil)

const friendRequestColumns = `request_id, from_id, to_id, status, created_at, updated_at`

func toDomainFriendRequest(m models.FriendRequest) domain.FriendRequest {
	return domain.FriendRequest{
		RequestID: m.RequestID,
		FromID:    m.FromID,
		ToID:      m.ToID,
		Status:    domain.FriendRequestStatus(m.Status),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func scanFriendRequest(row pgx.Row) (*domain.FriendRequest, error) {
	var m models.FriendRequest
	err := row.Scan(&m.RequestID, &m.FromID, &m.ToID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan friend request row: %w", err)
	}
	fr := toDomainFriendRequest(m)
	return &fr, nil
}

func (r *PgxFriendRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.FriendRequest, error) {
	query := `SELECT ` + friendRequestColumns + ` FROM friend_requests WHERE request_id = $1;`
	return scanFriendRequest(r.Pool.QueryRow(ctx, query, requestID))
}

func (r *PgxFriendRequestRepository) FindRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	query := `
        SELECT ` + friendRequestColumns + `
        FROM friend_requests
        WHERE (from_id = $1 AND to_id = $2) OR (from_id = $2 AND to_id = $1)
        ORDER BY updated_at DESC
        LIMIT 1;
    `
	return scanFriendRequest(r.Pool.QueryRow(ctx, query, a, b))
}

func (r *PgxFriendRequestRepository) FindActiveRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	query := `
        SELECT ` + friendRequestColumns + `
        FROM friend_requests
        WHERE ((from_id = $1 AND to_id = $2) OR (from_id = $2 AND to_id = $1))
          AND status IN ('pending', 'accepted')
        ORDER BY updated_at DESC
        LIMIT 1;
    `
	return scanFriendRequest(r.Pool.QueryRow(ctx, query, a, b))
}

func scanFriendRequestDetails(rows pgx.Rows, joinedSide string) ([]domain.FriendRequestDetail, error) {
	defer rows.Close()
	details := []domain.FriendRequestDetail{}
	for rows.Next() {
		var m models.FriendRequest
		var author domain.FeedAuthor
		var profileImage, bio, location sql.NullString
		err := rows.Scan(
			&m.RequestID, &m.FromID, &m.ToID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&author.UserID, &author.Name, &author.Username, &profileImage, &bio, &location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend request row: %w", err)
		}
		d := domain.FriendRequestDetail{FriendRequest: toDomainFriendRequest(m)}
		author.ProfileImage = profileImage.String
		author.Bio = bio.String
		author.Location = location.String
		if joinedSide == "from" {
			d.From = &author
		} else {
			d.To = &author
		}
		details = append(details, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating friend request rows: %w", rows.Err())
	}
	return details, nil
}

func (r *PgxFriendRequestRepository) ListPendingForUser(ctx context.Context, toID string) ([]domain.FriendRequestDetail, error) {
	query := `
        SELECT fr.request_id, fr.from_id, fr.to_id, fr.status, fr.created_at, fr.updated_at,
               u.user_id, u.name, u.username, u.profile_image, u.bio, u.location
        FROM friend_requests fr
        JOIN users u ON u.user_id = fr.from_id
        WHERE fr.to_id = $1 AND fr.status = 'pending'
        ORDER BY fr.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, toID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending friend requests: %w", err)
	}
	return scanFriendRequestDetails(rows, "from")
}

func (r *PgxFriendRequestRepository) ListSentByUser(ctx context.Context, fromID string) ([]domain.FriendRequestDetail, error) {
	query := `
        SELECT fr.request_id, fr.from_id, fr.to_id, fr.status, fr.created_at, fr.updated_at,
               u.user_id, u.name, u.username, u.profile_image, u.bio, u.location
        FROM friend_requests fr
        JOIN users u ON u.user_id = fr.to_id
        WHERE fr.from_id = $1
        ORDER BY fr.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, fromID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent friend requests: %w", err)
	}
	return scanFriendRequestDetails(rows, "to")
}

func (r *PgxFriendRequestRepository) SaveRequest(ctx context.Context, request domain.FriendRequest) error {
	query := `
        INSERT INTO friend_requests (request_id, from_id, to_id, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		request.RequestID,
		request.FromID,
		request.ToID,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // pending pair already exists
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save friend request: %w", err)
	}
	return nil
}

// AcceptRequest flips the status and makes the circle membership symmetric in
// one transaction. The UPDATE's pending-only predicate is the concurrency
// guard: two concurrent accepts race on it and exactly one wins.
func (r *PgxFriendRequestRepository) AcceptRequest(ctx context.Context, requestID string) (*domain.FriendRequest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now()
	updateQuery := `
        UPDATE friend_requests
        SET status = 'accepted', updated_at = $2
        WHERE request_id = $1 AND status = 'pending'
        RETURNING ` + friendRequestColumns + `;
    `
	fr, err := scanFriendRequest(tx.QueryRow(ctx, updateQuery, requestID, now))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Distinguish "no such request" from "already processed".
			existing, lookupErr := r.FindRequestByID(ctx, requestID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return existing, apperrors.ErrConflict
		}
		return nil, err
	}

	circleQuery := `
        INSERT INTO close_circle (owner_id, member_id, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (owner_id, member_id) DO NOTHING;
    `
	if _, err := tx.Exec(ctx, circleQuery, fr.FromID, fr.ToID, now); err != nil {
		return nil, fmt.Errorf("failed to add member to sender circle: %w", err)
	}
	if _, err := tx.Exec(ctx, circleQuery, fr.ToID, fr.FromID, now); err != nil {
		return nil, fmt.Errorf("failed to add member to recipient circle: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return fr, nil
}

func (r *PgxFriendRequestRepository) RejectRequest(ctx context.Context, requestID string) (*domain.FriendRequest, error) {
	query := `
        UPDATE friend_requests
        SET status = 'rejected', updated_at = $2
        WHERE request_id = $1 AND status = 'pending'
        RETURNING ` + friendRequestColumns + `;
    `
	fr, err := scanFriendRequest(r.Pool.QueryRow(ctx, query, requestID, time.Now()))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			existing, lookupErr := r.FindRequestByID(ctx, requestID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return existing, apperrors.ErrConflict
		}
		return nil, err
	}
	return fr, nil
}

func (r *PgxFriendRequestRepository) DeletePending(ctx context.Context, fromID, toID string) error {
	query := `DELETE FROM friend_requests WHERE from_id = $1 AND to_id = $2 AND status = 'pending';`
	cmdTag, err := r.Pool.Exec(ctx, query, fromID, toID)
	if err != nil {
		return fmt.Errorf("failed to delete pending friend request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFriendRequestRepository) DeleteAcceptedBetween(ctx context.Context, a, b string) error {
	query := `
        DELETE FROM friend_requests
        WHERE ((from_id = $1 AND to_id = $2) OR (from_id = $2 AND to_id = $1))
          AND status = 'accepted';
    `
	if _, err := r.Pool.Exec(ctx, query, a, b); err != nil {
		return fmt.Errorf("failed to delete accepted friend request: %w", err)
	}
	return nil
}
