package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User          UserSvcFacade
	FriendRequest FriendRequestSvcFacade
	Circle        CircleSvcFacade
	Journal       JournalSvcFacade
	Feed          FeedSvcFacade
	Reaction      ReactionSvcFacade
	Stats         StatsSvcFacade
	EarlyAccess   EarlyAccessSvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Media              MediaSvcFacade
	Mailer             Mailer
}
