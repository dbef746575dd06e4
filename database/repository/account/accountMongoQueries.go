// File: database/repository/account/accountMongoQueries.go
package accountRepo

import (
	"context"
	"fmt"
	"time"

	"pressroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoAccountRepo) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var account models.Account
	err := r.coll.FindOne(ctx, filter).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &account, nil
}

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByEmail retrieves an account by its email.
func (r *MongoAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByFirebaseUID retrieves an account linked to a managed-auth identity.
func (r *MongoAccountRepo) GetByFirebaseUID(ctx context.Context, uid string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"firebaseUid": uid})
}

// GetAll retrieves all account documents.
func (r *MongoAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}
