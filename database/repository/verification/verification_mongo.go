// File: database/repository/verification/verification_mongo.go
package verificationRepo

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

// MongoVerificationRepo is the MongoDB-backed VerificationRepository.
type MongoVerificationRepo struct {
	coll *mongo.Collection
}

// NewMongoVerificationRepo returns a repository bound to the verifications collection.
func NewMongoVerificationRepo() *MongoVerificationRepo {
	return &MongoVerificationRepo{coll: database.Collection("verifications")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new verification submission document.
func (r *MongoVerificationRepo) Create(ctx context.Context, submission *models.VerificationSubmission) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to create verification submission: %w", err)
	}
	return nil
}

// GetByID retrieves a submission by its unique ID.
func (r *MongoVerificationRepo) GetByID(ctx context.Context, id string) (*models.VerificationSubmission, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var submission models.VerificationSubmission
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verification submission %s: %w", id, err)
	}
	return &submission, nil
}

// GetLatestByAccount returns the account's most recent submission.
func (r *MongoVerificationRepo) GetLatestByAccount(ctx context.Context, accountID string) (*models.VerificationSubmission, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	var submission models.VerificationSubmission
	err := r.coll.FindOne(ctx, bson.M{"accountId": accountID}, opts).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verification for account %s: %w", accountID, err)
	}
	return &submission, nil
}

// UpdateSetDocument applies a partial $set update to a submission document.
func (r *MongoVerificationRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update verification submission %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("verification submission with id %s not found", id)
	}
	return nil
}

// ListByStatus returns submissions in the given status, oldest first.
func (r *MongoVerificationRepo) ListByStatus(ctx context.Context, status string) ([]models.VerificationSubmission, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.VerificationSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode verification submissions: %w", err)
	}
	return submissions, nil
}
