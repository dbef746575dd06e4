// File: services/feed/aggregator.go
package feed

import (
	"context"
	"fmt"
	"sort"

	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/utils"

	"go.uber.org/zap"
)

// GetFeed returns the requested tab. Every branch honors ctx so a torn
// down view cancels its in-flight fetch instead of applying stale results.
func (s *DefaultFeedService) GetFeed(ctx context.Context, tab, category, language string) ([]models.Article, error) {
	switch tab {
	case TabArticles:
		return s.publishedArticles(ctx, category, defaultFeedLimit)
	case TabNews:
		return s.newsOnly(ctx, category, language)
	case TabRecent:
		return s.recent(ctx, category, language)
	case TabTrending:
		return s.trending(ctx, category)
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown feed tab %q", tab))
	}
}

// publishedArticles returns published user articles, newest first.
func (s *DefaultFeedService) publishedArticles(ctx context.Context, category string, limit int64) ([]models.Article, error) {
	articles, err := s.Articles.List(ctx, articleRepo.ArticleQuery{
		Status:   models.StatusPublished,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		return nil, &utils.UpstreamError{Op: "feed articles", Err: err}
	}
	return articles, nil
}

// newsOnly returns normalized external headlines. The external source
// failing yields an empty list, not an error; third-party flakiness must
// never break the reader-facing feed.
func (s *DefaultFeedService) newsOnly(ctx context.Context, category, language string) ([]models.Article, error) {
	items, err := s.fetchNews(ctx, category, language)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		utils.GetLogger().Warn("news source unavailable, degrading to empty headline list",
			zap.String("category", category), zap.Error(err))
		return []models.Article{}, nil
	}
	sortNewestFirst(items)
	return items, nil
}

// recent merges published user articles with external headlines, newest
// first by the best available timestamp. A failing news source degrades
// the result to user articles only.
func (s *DefaultFeedService) recent(ctx context.Context, category, language string) ([]models.Article, error) {
	articles, err := s.publishedArticles(ctx, category, defaultFeedLimit)
	if err != nil {
		return nil, err
	}

	headlines, err := s.fetchNews(ctx, category, language)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		utils.GetLogger().Warn("news source unavailable, serving user articles only",
			zap.String("category", category), zap.Error(err))
		headlines = nil
	}

	merged := mergeDedup(articles, headlines)
	sortNewestFirst(merged)
	if len(merged) > defaultFeedLimit {
		merged = merged[:defaultFeedLimit]
	}
	return merged, nil
}

// mergeDedup unions two article lists, dropping duplicate IDs. User
// articles win over headlines carrying the same synthesized ID.
func mergeDedup(articles, headlines []models.Article) []models.Article {
	seen := make(map[string]bool, len(articles)+len(headlines))
	merged := make([]models.Article, 0, len(articles)+len(headlines))
	for _, a := range articles {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		merged = append(merged, a)
	}
	for _, h := range headlines {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		merged = append(merged, h)
	}
	return merged
}

// sortNewestFirst orders by the best available timestamp, newest first.
// Records with no dates carry the epoch fallback and sort last. ID breaks
// exact-timestamp ties so the order is stable across calls.
func sortNewestFirst(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, tj := articles[i].BestTimestamp(), articles[j].BestTimestamp()
		if ti.Equal(tj) {
			return articles[i].ID < articles[j].ID
		}
		return ti.After(tj)
	})
}
