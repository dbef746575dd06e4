// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for session cache entries.
const AuthCacheTTL = 10 * time.Minute

// NewsCachePrefix is the prefix used for cached external headline blocks.
const NewsCachePrefix = "news:"

// ArticleEventsChannel is the Redis pub/sub channel carrying article
// change events between live clients of this deployment.
const ArticleEventsChannel = "pressroom:article-events"
