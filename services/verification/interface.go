package verification

import (
	"context"

	accountRepo "pressroom/database/repository/account"
	verificationRepo "pressroom/database/repository/verification"
	"pressroom/models"
)

// VerificationService owns the account verification workflow: document
// submission, the optional review queue, and the verified flag on the
// account record.
type VerificationService interface {
	// SubmitVerification validates the documents against the tier minimum
	// and persists the submission. Under the auto-approve policy the
	// account is verified immediately; otherwise the submission waits in
	// the review queue.
	SubmitVerification(ctx context.Context, accountID, accountType string, documents []models.VerificationDocument) (*models.VerificationSubmission, error)
	// GetVerificationStatus reports where an account's verification
	// stands; "none" when nothing was ever submitted.
	GetVerificationStatus(ctx context.Context, accountID string) (*models.VerificationStatusView, error)
	// ListPending returns the review queue, oldest first. Admin only.
	ListPending(ctx context.Context, actor *models.Account) ([]models.VerificationSubmission, error)
	// ReviewVerification resolves a pending submission. Admin only.
	ReviewVerification(ctx context.Context, actor *models.Account, submissionID string, approve bool, reason string) (*models.VerificationSubmission, error)
}

// DefaultVerificationService is the production implementation.
type DefaultVerificationService struct {
	Repo     verificationRepo.VerificationRepository
	Accounts accountRepo.AccountRepository

	// AutoApprove mirrors the configured policy. Instant verification is
	// the observed production behavior; deployments wanting human review
	// turn it off and use the ReviewVerification queue instead.
	AutoApprove bool
}
