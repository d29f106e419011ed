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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, password_hash, name, profile_image, bio, location,
		total_likes, total_reads, consistency,
		reset_token_hash, reset_token_expiry, refresh_token_hash, refresh_token_expiry,
		created_at, updated_at`

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash.String,
		Name:         m.Name,
		ProfileImage: m.ProfileImage.String,
		Bio:          m.Bio.String,
		Location:     m.Location.String,
		TotalLikes:   m.TotalLikes,
		TotalReads:   m.TotalReads,
		Consistency:  m.Consistency,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	u.ResetTokenHash = m.ResetTokenHash.String
	if m.ResetTokenExpiry.Valid {
		t := m.ResetTokenExpiry.Time
		u.ResetTokenExpiry = &t
	}
	u.RefreshTokenHash = m.RefreshTokenHash.String
	if m.RefreshTokenExpiry.Valid {
		t := m.RefreshTokenExpiry.Time
		u.RefreshTokenExpiry = &t
	}
	return u
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.Name,
		&m.ProfileImage,
		&m.Bio,
		&m.Location,
		&m.TotalLikes,
		&m.TotalReads,
		&m.Consistency,
		&m.ResetTokenHash,
		&m.ResetTokenExpiry,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiry,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, email, password_hash, name, profile_image, bio, location, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		nullString(user.PasswordHash),
		user.Name,
		nullString(user.ProfileImage),
		nullString(user.Bio),
		nullString(user.Location),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, username))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET name = $1, username = $2, bio = $3, location = $4, profile_image = $5, updated_at = $6
        WHERE user_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.Name,
		user.Username,
		nullString(user.Bio),
		nullString(user.Location),
		nullString(user.ProfileImage),
		user.UpdatedAt,
		user.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateStats(ctx context.Context, userID string, stats domain.UserStats) error {
	query := `
        UPDATE users
        SET total_likes = $1, total_reads = $2, consistency = $3, updated_at = now()
        WHERE user_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, stats.TotalLikes, stats.TotalReads, stats.Consistency, userID)
	if err != nil {
		return fmt.Errorf("failed to update user stats: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	query := `UPDATE users SET refresh_token_hash = $1, refresh_token_expiry = $2, updated_at = now() WHERE user_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, tokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry = NULL, updated_at = now() WHERE user_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	query := `UPDATE users SET reset_token_hash = $1, reset_token_expiry = $2, updated_at = now() WHERE user_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, tokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token_hash = $1 AND reset_token_expiry > now();`
	return scanUser(r.Pool.QueryRow(ctx, query, tokenHash))
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, reset_token_hash = NULL, reset_token_expiry = NULL, updated_at = now()
        WHERE user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanCircleMembers(rows pgx.Rows) ([]domain.CircleMember, error) {
	defer rows.Close()
	members := []domain.CircleMember{}
	for rows.Next() {
		var m domain.CircleMember
		var profileImage, bio, location sql.NullString
		if err := rows.Scan(&m.UserID, &m.Name, &m.Username, &profileImage, &bio, &location, &m.MemberSince); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		m.ProfileImage = profileImage.String
		m.Bio = bio.String
		m.Location = location.String
		members = append(members, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxUserRepository) SearchUsers(ctx context.Context, viewerID string, query string, limit int) ([]domain.CircleMember, error) {
	if limit <= 0 {
		limit = 10
	}
	sqlQuery := `
        SELECT user_id, name, username, profile_image, bio, location, created_at
        FROM users
        WHERE user_id <> $1
          AND (name ILIKE '%' || $2 || '%' OR username ILIKE '%' || $2 || '%')
        ORDER BY created_at DESC
        LIMIT $3;
    `
	rows, err := r.Pool.Query(ctx, sqlQuery, viewerID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return scanCircleMembers(rows)
}

func (r *PgxUserRepository) SuggestUsers(ctx context.Context, viewerID string, excludeIDs []string, limit int) ([]domain.CircleMember, error) {
	if limit <= 0 {
		limit = 8
	}
	sqlQuery := `
        SELECT user_id, name, username, profile_image, bio, location, created_at
        FROM users
        WHERE user_id <> $1
          AND NOT (user_id = ANY($2))
        ORDER BY random()
        LIMIT $3;
    `
	if excludeIDs == nil {
		excludeIDs = []string{}
	}
	rows, err := r.Pool.Query(ctx, sqlQuery, viewerID, excludeIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest users: %w", err)
	}
	return scanCircleMembers(rows)
}
