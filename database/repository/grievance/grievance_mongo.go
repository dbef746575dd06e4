// File: database/repository/grievance/grievance_mongo.go
package grievanceRepo

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

// MongoGrievanceRepo is the MongoDB-backed GrievanceRepository.
type MongoGrievanceRepo struct {
	coll *mongo.Collection
}

// NewMongoGrievanceRepo returns a repository bound to the grievances collection.
func NewMongoGrievanceRepo() *MongoGrievanceRepo {
	return &MongoGrievanceRepo{coll: database.Collection("grievances")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new grievance document.
func (r *MongoGrievanceRepo) Create(ctx context.Context, grievance *models.Grievance) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if grievance.Evidence == nil {
		grievance.Evidence = []models.Evidence{}
	}
	if grievance.AdminNotes == nil {
		grievance.AdminNotes = []models.AdminNote{}
	}
	_, err := r.coll.InsertOne(ctx, grievance)
	if err != nil {
		return fmt.Errorf("failed to create grievance: %w", err)
	}
	return nil
}

// GetByID retrieves a grievance by its unique ID.
func (r *MongoGrievanceRepo) GetByID(ctx context.Context, id string) (*models.Grievance, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var grievance models.Grievance
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&grievance)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grievance with id %s: %w", id, err)
	}
	return &grievance, nil
}

// UpdateSetDocument applies a partial $set update to a grievance document.
func (r *MongoGrievanceRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update grievance with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("grievance with id %s not found", id)
	}
	return nil
}

// AppendNote pushes an admin note onto the grievance audit trail.
func (r *MongoGrievanceRepo) AppendNote(ctx context.Context, id string, note models.AdminNote) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"adminNotes": note}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append note to grievance %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("grievance with id %s not found", id)
	}
	return nil
}

func (r *MongoGrievanceRepo) list(ctx context.Context, filter bson.M) ([]models.Grievance, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list grievances: %w", err)
	}
	defer cursor.Close(ctx)

	var grievances []models.Grievance
	if err := cursor.All(ctx, &grievances); err != nil {
		return nil, fmt.Errorf("failed to decode grievances: %w", err)
	}
	return grievances, nil
}

// ListByStatus returns grievances in the given status, newest first.
func (r *MongoGrievanceRepo) ListByStatus(ctx context.Context, status string) ([]models.Grievance, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

// ListByReporter returns the grievances an account filed, newest first.
func (r *MongoGrievanceRepo) ListByReporter(ctx context.Context, accountID string) ([]models.Grievance, error) {
	return r.list(ctx, bson.M{"reportedBy": accountID})
}
