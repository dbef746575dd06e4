// File: database/repository/article/articleMongoQueries.go
package articleRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns articles matching the query, newest first. publishedAt is
// the primary sort key with createdAt as the fallback for drafts and
// pending submissions that have no publish date yet.
func (r *MongoArticleRepo) List(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.AuthorID != "" {
		filter["authorId"] = q.AuthorID
	}
	if q.Category != "" && !strings.EqualFold(q.Category, models.CategoryAll) {
		filter["category"] = strings.ToLower(q.Category)
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "publishedAt", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}
