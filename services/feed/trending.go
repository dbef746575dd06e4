// File: services/feed/trending.go
package feed

import (
	"context"
	"sort"

	"pressroom/config"
	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/utils"
)

// Rank orders candidates by trending score (likes*3 + views), highest
// first. Ties break on newest publishedAt, then ID, so two calls over the
// same candidate set always produce the same order. The result is
// truncated to limit.
func Rank(pool []models.Article, limit int) []models.Article {
	ranked := make([]models.Article, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].TrendingScore(), ranked[j].TrendingScore()
		if si != sj {
			return si > sj
		}
		ti, tj := ranked[i].BestTimestamp(), ranked[j].BestTimestamp()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *DefaultFeedService) poolMultiplier() int {
	if s.PoolMultiplier > 0 {
		return s.PoolMultiplier
	}
	if config.AppConfig.TrendingPoolMultiplier > 0 {
		return config.AppConfig.TrendingPoolMultiplier
	}
	return 3
}

// trending ranks published user articles only. The candidate pool is a
// multiple of the returned limit, newest published first, approximating a
// full ranking without pulling the whole collection.
func (s *DefaultFeedService) trending(ctx context.Context, category string) ([]models.Article, error) {
	pool, err := s.Articles.List(ctx, articleRepo.ArticleQuery{
		Status:   models.StatusPublished,
		Category: category,
		Limit:    int64(trendingLimit * s.poolMultiplier()),
	})
	if err != nil {
		return nil, &utils.UpstreamError{Op: "feed trending", Err: err}
	}
	return Rank(pool, trendingLimit), nil
}
