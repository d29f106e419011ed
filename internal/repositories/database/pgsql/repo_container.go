package pgsql

import (
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		CircleRepo:        newPgxCircleRepository(dbPool),
		FriendRequestRepo: newPgxFriendRequestRepository(dbPool),
		JournalRepo:       newPgxJournalRepository(dbPool),
		ReactionRepo:      newPgxReactionRepository(dbPool),
		EarlyAccessRepo:   newPgxEarlyAccessRepository(dbPool),
	}
}
