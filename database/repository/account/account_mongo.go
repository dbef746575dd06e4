package accountRepo

import (
	"context"
	"time"

	"pressroom/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAccountRepo is the MongoDB-backed AccountRepository.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo returns a repository bound to the accounts collection.
func NewMongoAccountRepo() *MongoAccountRepo {
	return &MongoAccountRepo{coll: database.Collection("accounts")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
