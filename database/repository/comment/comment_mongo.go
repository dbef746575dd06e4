// File: database/repository/comment/comment_mongo.go
package commentRepo

import (
	"context"
	"fmt"
	"time"

	"pressroom/database"
	"pressroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommentRepo is the MongoDB-backed CommentRepository.
type MongoCommentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommentRepo returns a repository bound to the comments collection.
func NewMongoCommentRepo() *MongoCommentRepo {
	return &MongoCommentRepo{coll: database.Collection("comments")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new comment document.
func (r *MongoCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	comment.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its unique ID.
func (r *MongoCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var comment models.Comment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment with id %s: %w", id, err)
	}
	return &comment, nil
}

// ListByArticle returns an article's comments, newest first.
func (r *MongoCommentRepo) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"articleId": articleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for article %s: %w", articleID, err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment document by its ID.
func (r *MongoCommentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment with id %s not found", id)
	}
	return nil
}
