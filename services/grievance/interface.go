package grievance

import (
	"context"

	grievanceRepo "pressroom/database/repository/grievance"
	"pressroom/models"
)

// GrievanceInput carries the reporter-supplied fields of a complaint.
type GrievanceInput struct {
	Type             string            `json:"type"`
	Subject          string            `json:"subject"`
	Description      string            `json:"description"`
	RelatedContentID string            `json:"relatedContentId"`
	Evidence         []models.Evidence `json:"evidence"`
}

// GrievanceService owns the legal-grievance workflow: submission with
// derived priority and synchronous acknowledgement, then admin-driven
// transitions through to resolution.
type GrievanceService interface {
	// Submit files a grievance. Priority is derived from the type, and
	// the record is acknowledged synchronously with a system note.
	Submit(ctx context.Context, reporter *models.Account, input GrievanceInput) (*models.Grievance, error)
	// GetByID fetches one grievance; reporters see their own, grievance
	// managers see all.
	GetByID(ctx context.Context, actor *models.Account, id string) (*models.Grievance, error)
	// ListForReporter returns the grievances the actor filed.
	ListForReporter(ctx context.Context, reporter *models.Account) ([]models.Grievance, error)
	// ListByStatus returns the admin queue; empty status means all.
	ListByStatus(ctx context.Context, actor *models.Account, status string) ([]models.Grievance, error)
	// Transition moves a grievance to the next status with a note.
	// Resolved and rejected are terminal; escalated is a side branch.
	Transition(ctx context.Context, actor *models.Account, id, nextStatus, note, resolution string) (*models.Grievance, error)
	// AddNote appends an admin note without changing status.
	AddNote(ctx context.Context, actor *models.Account, id, note string) (*models.Grievance, error)
}

// DefaultGrievanceService is the production implementation.
type DefaultGrievanceService struct {
	Repo grievanceRepo.GrievanceRepository
}
