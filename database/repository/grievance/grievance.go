package grievanceRepo

import (
	"context"

	"pressroom/models"
)

// GrievanceRepository defines methods for grievance data access.
type GrievanceRepository interface {
	// Create inserts a new grievance record.
	Create(ctx context.Context, grievance *models.Grievance) error
	// GetByID retrieves a grievance by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Grievance, error)
	// UpdateSetDocument applies a partial $set update to a grievance.
	UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error
	// AppendNote pushes an admin note onto the grievance audit trail.
	AppendNote(ctx context.Context, id string, note models.AdminNote) error
	// ListByStatus returns grievances in the given status, newest first.
	// An empty status returns everything.
	ListByStatus(ctx context.Context, status string) ([]models.Grievance, error)
	// ListByReporter returns the grievances an account filed, newest first.
	ListByReporter(ctx context.Context, accountID string) ([]models.Grievance, error)
}
