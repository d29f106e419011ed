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

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalDateLayout = "2006-01-02"

const journalColumns = `journal_id, author_id, title, content, journal_date, visibility,
		is_anonymous, images, likes_count, reads_count, created_at, updated_at`

func toDomainJournal(m models.Journal) domain.Journal {
	j := domain.Journal{
		JournalID:   m.JournalID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Content:     m.Content,
		JournalDate: m.JournalDate.Format(journalDateLayout),
		Visibility:  domain.Visibility(m.Visibility),
		IsAnonymous: m.IsAnonymous,
		Images:      m.Images,
		LikesCount:  m.LikesCount,
		ReadsCount:  m.ReadsCount,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if j.Images == nil {
		j.Images = []string{}
	}
	return j
}

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.AuthorID,
		&m.Title,
		&m.Content,
		&m.JournalDate,
		&m.Visibility,
		&m.IsAnonymous,
		&m.Images,
		&m.LikesCount,
		&m.ReadsCount,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan journal row: %w", err)
	}
	j := toDomainJournal(m)
	return &j, nil
}

func scanJournals(rows pgx.Rows) ([]domain.Journal, error) {
	defer rows.Close()
	journals := []domain.Journal{}
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		journals = append(journals, *j)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", rows.Err())
	}
	return journals, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	return scanJournal(r.Pool.QueryRow(ctx, query, journalID))
}

func (r *PgxJournalRepository) FindJournalByAuthorAndDate(ctx context.Context, authorID, date string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE author_id = $1 AND journal_date = $2;`
	return scanJournal(r.Pool.QueryRow(ctx, query, authorID, date))
}

func (r *PgxJournalRepository) FindJournalsByAuthor(ctx context.Context, authorID string, visibilities []domain.Visibility) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE author_id = $1`
	args := []any{authorID}
	if visibilities != nil {
		tiers := make([]string, 0, len(visibilities))
		for _, v := range visibilities {
			tiers = append(tiers, string(v))
		}
		query += ` AND visibility = ANY($2)`
		args = append(args, tiers)
	}
	query += ` ORDER BY journal_date DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find journals by author: %w", err)
	}
	return scanJournals(rows)
}

func (r *PgxJournalRepository) FindJournalsByAuthorInRange(ctx context.Context, authorID, from, to string) ([]domain.Journal, error) {
	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE author_id = $1 AND journal_date >= $2 AND journal_date < $3
        ORDER BY journal_date ASC;
    `
	rows, err := r.Pool.Query(ctx, query, authorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find journals in range: %w", err)
	}
	return scanJournals(rows)
}

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	query := `
        INSERT INTO journals (journal_id, author_id, title, content, journal_date, visibility,
                              is_anonymous, images, likes_count, reads_count, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, $9, $10);
    `
	images := journal.Images
	if images == nil {
		images = []string{}
	}
	_, err := r.Pool.Exec(ctx, query,
		journal.JournalID,
		journal.AuthorID,
		journal.Title,
		journal.Content,
		journal.JournalDate,
		journal.Visibility,
		journal.IsAnonymous,
		images,
		journal.CreatedAt,
		journal.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // one entry per author per date
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	query := `
        UPDATE journals
        SET title = $1, content = $2, visibility = $3, is_anonymous = $4, images = $5, updated_at = $6
        WHERE journal_id = $7;
    `
	images := journal.Images
	if images == nil {
		images = []string{}
	}
	cmdTag, err := r.Pool.Exec(ctx, query,
		journal.Title,
		journal.Content,
		journal.Visibility,
		journal.IsAnonymous,
		images,
		journal.UpdatedAt,
		journal.JournalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteJournal removes the journal and its reaction ledger rows together so
// no orphaned reactions survive.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM reactions WHERE journal_id = $1;`, journalID); err != nil {
		return fmt.Errorf("failed to delete journal reactions: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) AppendImage(ctx context.Context, journalID string, imageURL string) error {
	query := `UPDATE journals SET images = array_append(images, $1), updated_at = now() WHERE journal_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, imageURL, journalID)
	if err != nil {
		return fmt.Errorf("failed to append journal image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJournalRepository) FindPublicJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM journals WHERE visibility = 'public';`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count public journals: %w", err)
	}

	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE visibility = 'public'
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find public journals: %w", err)
	}
	journals, err := scanJournals(rows)
	if err != nil {
		return nil, 0, err
	}
	return journals, total, nil
}

func (r *PgxJournalRepository) FindCircleJournals(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.Journal, int64, error) {
	if len(authorIDs) == 0 {
		return []domain.Journal{}, 0, nil
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM journals WHERE visibility = 'close-circle' AND author_id = ANY($1);`
	if err := r.Pool.QueryRow(ctx, countQuery, authorIDs).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count circle journals: %w", err)
	}

	query := `
        SELECT ` + journalColumns + `
        FROM journals
        WHERE visibility = 'close-circle' AND author_id = ANY($1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, authorIDs, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find circle journals: %w", err)
	}
	journals, err := scanJournals(rows)
	if err != nil {
		return nil, 0, err
	}
	return journals, total, nil
}

func (r *PgxJournalRepository) IncrementReads(ctx context.Context, journalIDs []string) error {
	if len(journalIDs) == 0 {
		return nil
	}
	query := `UPDATE journals SET reads_count = reads_count + 1 WHERE journal_id = ANY($1);`
	if _, err := r.Pool.Exec(ctx, query, journalIDs); err != nil {
		return fmt.Errorf("failed to increment journal reads: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindAuthorsByIDs(ctx context.Context, userIDs []string) (map[string]domain.FeedAuthor, error) {
	authors := map[string]domain.FeedAuthor{}
	if len(userIDs) == 0 {
		return authors, nil
	}
	query := `SELECT user_id, name, username, profile_image, bio, location FROM users WHERE user_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find feed authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.FeedAuthor
		var profileImage, bio, location sql.NullString
		if err := rows.Scan(&a.UserID, &a.Name, &a.Username, &profileImage, &bio, &location); err != nil {
			return nil, fmt.Errorf("failed to scan feed author row: %w", err)
		}
		a.ProfileImage = profileImage.String
		a.Bio = bio.String
		a.Location = location.String
		authors[a.UserID] = a
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating feed author rows: %w", rows.Err())
	}
	return authors, nil
}

func (r *PgxJournalRepository) SumCountersByAuthor(ctx context.Context, authorID string) (int, int, int, error) {
	query := `
        SELECT COALESCE(SUM(likes_count), 0), COALESCE(SUM(reads_count), 0), COUNT(*)
        FROM journals
        WHERE author_id = $1;
    `
	var likes, reads, count int
	if err := r.Pool.QueryRow(ctx, query, authorID).Scan(&likes, &reads, &count); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to sum journal counters: %w", err)
	}
	return likes, reads, count, nil
}

func (r *PgxJournalRepository) CountDistinctCreationDays(ctx context.Context, authorID string, since time.Time) (int, error) {
	query := `
        SELECT COUNT(DISTINCT created_at::date)
        FROM journals
        WHERE author_id = $1 AND created_at >= $2;
    `
	var days int
	if err := r.Pool.QueryRow(ctx, query, authorID, since).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to count creation days: %w", err)
	}
	return days, nil
}
