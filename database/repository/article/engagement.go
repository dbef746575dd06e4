// File: database/repository/article/engagement.go
package articleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddLike performs a single atomic update: the filter requires the account
// to be absent from likedBy, and the update adds it while incrementing the
// counter. Two racing likes from the same account match at most once, so
// likes can never drift from len(likedBy).
func (r *MongoArticleRepo) AddLike(ctx context.Context, articleID, accountID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": articleID, "likedBy": bson.M{"$ne": accountID}}
	update := bson.M{
		"$addToSet": bson.M{"likedBy": accountID},
		"$inc":      bson.M{"likes": 1},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to like article %s: %w", articleID, err)
	}
	return result.ModifiedCount > 0, nil
}

// RemoveLike is the symmetric atomic pull + decrement; the filter requires
// the account to be present so the counter only moves when the pull does.
func (r *MongoArticleRepo) RemoveLike(ctx context.Context, articleID, accountID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": articleID, "likedBy": accountID}
	update := bson.M{
		"$pull": bson.M{"likedBy": accountID},
		"$inc":  bson.M{"likes": -1},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to unlike article %s: %w", articleID, err)
	}
	return result.ModifiedCount > 0, nil
}

// IncrementViews bumps the view counter.
func (r *MongoArticleRepo) IncrementViews(ctx context.Context, articleID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": articleID}
	update := bson.M{"$inc": bson.M{"views": 1}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment views for article %s: %w", articleID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("article with id %s not found", articleID)
	}
	return nil
}

// AddReport records a distinct reporter and returns the updated report
// count. The membership guard keeps repeat reports from the same account
// from inflating the counter.
func (r *MongoArticleRepo) AddReport(ctx context.Context, articleID, reporterID string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": articleID, "reportedBy": bson.M{"$ne": reporterID}}
	update := bson.M{
		"$addToSet": bson.M{"reportedBy": reporterID},
		"$inc":      bson.M{"reports": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated struct {
		Reports int64 `bson:"reports"`
	}
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Either an unknown article or a repeat reporter; read back the
		// current count so the caller can still evaluate the threshold.
		var current struct {
			Reports int64 `bson:"reports"`
		}
		err = r.coll.FindOne(ctx, bson.M{"id": articleID}).Decode(&current)
		if err == mongo.ErrNoDocuments {
			return 0, fmt.Errorf("article with id %s not found", articleID)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read reports for article %s: %w", articleID, err)
		}
		return current.Reports, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to report article %s: %w", articleID, err)
	}
	return updated.Reports, nil
}
