// File: database/repository/account/accountMongoCrud.go
package accountRepo

import (
	"context"
	"fmt"
	"time"

	"pressroom/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to an account document.
func (r *MongoAccountRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}

// SetVerification flips verified and verificationStatus in one update.
func (r *MongoAccountRepo) SetVerification(ctx context.Context, id string, verified bool, status string) error {
	return r.UpdateSetDocument(ctx, id, map[string]any{
		"verified":           verified,
		"verificationStatus": status,
	})
}

// Delete removes an account document by its ID.
func (r *MongoAccountRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
