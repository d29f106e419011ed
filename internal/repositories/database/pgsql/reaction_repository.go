package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	"github.com/inkwellhq/inkwell_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReactionRepository struct {
	BaseRepository
}

func newPgxReactionRepository(db *pgxpool.Pool) portsrepo.ReactionRepositoryFacade {
	return &PgxReactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReactionRepositoryFacade = (*PgxReactionRepository)(nil)

func toDomainReaction(m models.Reaction) domain.Reaction {
	return domain.Reaction{
		ReactionID: m.ReactionID,
		JournalID:  m.JournalID,
		UserID:     m.UserID,
		Type:       m.Type,
		CreatedAt:  m.CreatedAt,
	}
}

// recountLikes recomputes the journal's like count from the ledger and writes
// it back onto the journal row, all inside the caller's transaction.
func recountLikes(ctx context.Context, tx pgx.Tx, journalID string) (int, error) {
	var count int
	countQuery := `SELECT COUNT(*) FROM reactions WHERE journal_id = $1 AND type = $2;`
	if err := tx.QueryRow(ctx, countQuery, journalID, domain.ReactionLike).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to recount likes: %w", err)
	}
	writeQuery := `UPDATE journals SET likes_count = $1 WHERE journal_id = $2;`
	if _, err := tx.Exec(ctx, writeQuery, count, journalID); err != nil {
		return 0, fmt.Errorf("failed to write back like count: %w", err)
	}
	return count, nil
}

func (r *PgxReactionRepository) ToggleLike(ctx context.Context, userID, journalID string) (bool, int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	deleteQuery := `DELETE FROM reactions WHERE user_id = $1 AND journal_id = $2 AND type = $3;`
	cmdTag, err := tx.Exec(ctx, deleteQuery, userID, journalID, domain.ReactionLike)
	if err != nil {
		return false, 0, fmt.Errorf("failed to toggle like: %w", err)
	}

	liked := false
	if cmdTag.RowsAffected() == 0 {
		insertQuery := `
            INSERT INTO reactions (reaction_id, journal_id, user_id, type, created_at)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (user_id, journal_id, type) DO NOTHING;
        `
		inserted, err := tx.Exec(ctx, insertQuery, uuid.NewString(), journalID, userID, domain.ReactionLike, time.Now())
		if err != nil {
			return false, 0, fmt.Errorf("failed to toggle like: %w", err)
		}
		liked = inserted.RowsAffected() > 0
	}

	count, err := recountLikes(ctx, tx, journalID)
	if err != nil {
		return false, 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *PgxReactionRepository) AddLike(ctx context.Context, userID, journalID string) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
        INSERT INTO reactions (reaction_id, journal_id, user_id, type, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	if _, err := tx.Exec(ctx, query, uuid.NewString(), journalID, userID, domain.ReactionLike, time.Now()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to add like: %w", err)
	}

	count, err := recountLikes(ctx, tx, journalID)
	if err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxReactionRepository) RemoveLike(ctx context.Context, userID, journalID string) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `DELETE FROM reactions WHERE user_id = $1 AND journal_id = $2 AND type = $3;`
	cmdTag, err := tx.Exec(ctx, query, userID, journalID, domain.ReactionLike)
	if err != nil {
		return 0, fmt.Errorf("failed to remove like: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.ErrNotFound
	}

	count, err := recountLikes(ctx, tx, journalID)
	if err != nil {
		return 0, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxReactionRepository) ListByJournal(ctx context.Context, journalID string) ([]domain.ReactionDetail, error) {
	query := `
        SELECT re.reaction_id, re.journal_id, re.user_id, re.type, re.created_at,
               u.user_id, u.name, u.username, u.profile_image, u.bio, u.location
        FROM reactions re
        JOIN users u ON u.user_id = re.user_id
        WHERE re.journal_id = $1
        ORDER BY re.created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	defer rows.Close()

	details := []domain.ReactionDetail{}
	for rows.Next() {
		var m models.Reaction
		var user domain.FeedAuthor
		var profileImage, bio, location sql.NullString
		err := rows.Scan(
			&m.ReactionID, &m.JournalID, &m.UserID, &m.Type, &m.CreatedAt,
			&user.UserID, &user.Name, &user.Username, &profileImage, &bio, &location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reaction row: %w", err)
		}
		user.ProfileImage = profileImage.String
		user.Bio = bio.String
		user.Location = location.String
		details = append(details, domain.ReactionDetail{Reaction: toDomainReaction(m), User: user})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reaction rows: %w", rows.Err())
	}
	return details, nil
}

func (r *PgxReactionRepository) ListLikedJournalIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT journal_id FROM reactions WHERE user_id = $1 AND type = $2 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID, domain.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked journals: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked journal id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liked journal ids: %w", rows.Err())
	}
	return ids, nil
}

func (r *PgxReactionRepository) CountByJournalIDs(ctx context.Context, journalIDs []string) (map[string]int, error) {
	counts := map[string]int{}
	if len(journalIDs) == 0 {
		return counts, nil
	}
	query := `
        SELECT journal_id, COUNT(*)
        FROM reactions
        WHERE journal_id = ANY($1) AND type = $2
        GROUP BY journal_id;
    `
	rows, err := r.Pool.Query(ctx, query, journalIDs, domain.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count: %w", err)
		}
		counts[id] = count
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reaction counts: %w", rows.Err())
	}
	return counts, nil
}
