// File: services/feed/cache.go
package feed

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pressroom/config"
	"pressroom/models"
	"pressroom/utils"

	"go.uber.org/zap"
)

func newsCacheKey(category, language string) string {
	if category == "" {
		category = models.CategoryAll
	}
	if language == "" {
		language = "any"
	}
	return utils.NewsCachePrefix + strings.ToLower(category) + ":" + strings.ToLower(language)
}

func newsCacheTTL() time.Duration {
	if config.AppConfig.NewsCacheTTLSec > 0 {
		return time.Duration(config.AppConfig.NewsCacheTTLSec) * time.Second
	}
	return 5 * time.Minute
}

// fetchNews returns normalized headlines for a category, served from the
// Redis cache when fresh. Cache failures fall through to the live fetch;
// only a live-fetch failure surfaces to the caller.
func (s *DefaultFeedService) fetchNews(ctx context.Context, category, language string) ([]models.Article, error) {
	logger := utils.GetLogger()
	key := newsCacheKey(category, language)

	if s.Cache != nil {
		payload, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var cached []models.Article
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return cached, nil
			}
			logger.Warn("dropping malformed news cache entry", zap.String("key", key))
		}
	}

	raw, err := s.News.FetchHeadlines(ctx, category, language)
	if err != nil {
		return nil, err
	}

	normalized := make([]models.Article, 0, len(raw))
	for _, item := range raw {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		itemCategory := category
		if itemCategory == "" || strings.EqualFold(itemCategory, models.CategoryAll) {
			itemCategory = "general"
		}
		normalized = append(normalized, item.Normalize(strings.ToLower(itemCategory)))
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(normalized); err == nil {
			if err := s.Cache.Set(ctx, key, payload, newsCacheTTL()).Err(); err != nil {
				logger.Warn("failed to cache headlines", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return normalized, nil
}
