package articleRepo

import (
	"context"
	"time"

	"pressroom/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoArticleRepo is the MongoDB-backed ArticleRepository.
type MongoArticleRepo struct {
	coll *mongo.Collection
}

// NewMongoArticleRepo returns a repository bound to the articles collection.
func NewMongoArticleRepo() *MongoArticleRepo {
	return &MongoArticleRepo{coll: database.Collection("articles")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
