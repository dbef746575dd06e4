package verificationRepo

import (
	"context"

	"pressroom/models"
)

// VerificationRepository defines methods for verification-submission data
// access. Submissions are append-only; a resubmission supersedes the
// previous record and the latest one is authoritative.
type VerificationRepository interface {
	// Create inserts a new verification submission.
	Create(ctx context.Context, submission *models.VerificationSubmission) error
	// GetByID retrieves a submission by its unique ID.
	GetByID(ctx context.Context, id string) (*models.VerificationSubmission, error)
	// GetLatestByAccount returns the account's most recent submission,
	// or nil when none exists.
	GetLatestByAccount(ctx context.Context, accountID string) (*models.VerificationSubmission, error)
	// UpdateSetDocument applies a partial $set update to a submission.
	UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error
	// ListByStatus returns submissions in the given status, oldest first,
	// so reviewers work the queue in arrival order.
	ListByStatus(ctx context.Context, status string) ([]models.VerificationSubmission, error)
}
