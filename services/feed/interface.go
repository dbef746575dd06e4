package feed

import (
	"context"

	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/services/news"

	"github.com/go-redis/redis/v8"
)

// Feed tabs.
const (
	TabTrending = "trending"
	TabRecent   = "recent"
	TabNews     = "news"
	TabArticles = "articles"
)

const (
	defaultFeedLimit = 50
	trendingLimit    = 20
)

// FeedService assembles the reader-facing feeds from published user
// articles and the external headline source.
type FeedService interface {
	// GetFeed returns the feed for one tab, scoped by category ("all"
	// disables the filter). The external source failing degrades the
	// result to user articles only; it never fails the call.
	GetFeed(ctx context.Context, tab, category, language string) ([]models.Article, error)
}

// DefaultFeedService is the production implementation.
type DefaultFeedService struct {
	Articles articleRepo.ArticleRepository
	News     news.NewsSource
	// Cache holds normalized headline blocks; nil disables caching.
	Cache *redis.Client

	// PoolMultiplier sizes the trending candidate pool relative to the
	// returned limit; zero means the configured default.
	PoolMultiplier int
}
