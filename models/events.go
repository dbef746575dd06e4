// models/events.go
package models

// Article event types carried over the cross-client notifier.
const (
	EventArticlePublished = "article_published"
	EventArticleRejected  = "article_rejected"
	EventArticleFlagged   = "article_flagged"
	EventArticleUpdated   = "article_updated"
	EventArticleDeleted   = "article_deleted"
)

// ArticleEvent tells other live clients that an article changed and their
// feed views should refetch. Subscribers re-run the feed query rather than
// patching local state so views never diverge from the store.
type ArticleEvent struct {
	Type      string `json:"type"`
	ArticleID string `json:"articleId"`
	Status    string `json:"status,omitempty"`
}
