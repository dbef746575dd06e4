// File: database/repository/article/articleMongoCrud.go
package articleRepo

import (
	"context"
	"fmt"
	"time"

	"pressroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new article document.
func (r *MongoArticleRepo) Create(ctx context.Context, article *models.Article) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if article.Sources == nil {
		article.Sources = []models.Source{}
	}
	if article.LikedBy == nil {
		article.LikedBy = []string{}
	}
	if article.ReportedBy == nil {
		article.ReportedBy = []string{}
	}

	_, err := r.coll.InsertOne(ctx, article)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by its unique ID.
func (r *MongoArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var article models.Article
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article with id %s: %w", id, err)
	}
	return &article, nil
}

// UpdateSetDocument applies a partial $set update to an article document.
func (r *MongoArticleRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update article with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("article with id %s not found", id)
	}
	return nil
}

// Delete removes an article document by its ID. Comments referencing the
// article are left in place, orphaned by id.
func (r *MongoArticleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete article with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("article with id %s not found", id)
	}
	return nil
}
