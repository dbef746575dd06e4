package handlers

import (
	accountRepoPkg "pressroom/database/repository/account"
)

// HandlerBundle groups every handler plus the repositories the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	AccountRepo accountRepoPkg.AccountRepository

	Accounts     *AccountHandler
	Articles     *ArticleHandler
	Feed         *FeedHandler
	Verification *VerificationHandler
	Grievances   *GrievanceHandler
	Comments     *CommentHandler
	Admin        *AdminHandler
	Storage      *StorageHandler
	Events       *EventsHandler
}
