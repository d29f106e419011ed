package services

import (
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The media store and mailer are built by the caller since they talk to the outside world.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, media portssvc.MediaSvcFacade, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Media = media
	container.Mailer = mailer

	container.User = NewUserService(cfg, repos.UserRepo, repos.CircleRepo, mailer)
	container.FriendRequest = NewFriendRequestService(repos.FriendRequestRepo, repos.UserRepo)
	container.Circle = NewCircleService(repos.CircleRepo, repos.FriendRequestRepo, repos.UserRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.CircleRepo)
	container.Feed = NewFeedService(repos.JournalRepo, repos.ReactionRepo, repos.CircleRepo)
	container.Reaction = NewReactionService(repos.ReactionRepo, repos.JournalRepo)
	container.Stats = NewStatsService(repos.JournalRepo, repos.UserRepo)
	container.EarlyAccess = NewEarlyAccessService(repos.EarlyAccessRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.FriendRequestSvcFacade = (*friendRequestService)(nil)
	_ portssvc.CircleSvcFacade        = (*circleService)(nil)
	_ portssvc.JournalSvcFacade       = (*journalService)(nil)
	_ portssvc.FeedSvcFacade          = (*feedService)(nil)
	_ portssvc.ReactionSvcFacade      = (*reactionService)(nil)
	_ portssvc.StatsSvcFacade         = (*statsService)(nil)
	_ portssvc.EarlyAccessSvcFacade   = (*earlyAccessService)(nil)
)
